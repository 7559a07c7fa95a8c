package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/df07/glimmer/pkg/config"
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/output"
	"github.com/df07/glimmer/pkg/renderer"
	"github.com/df07/glimmer/pkg/scene"
)

// options are the command line settings of one render
type options struct {
	Scene     string
	Width     int // 0 means the scene's own size
	Height    int
	Antialias string // "", "on", "off" or a grid size
	MaxDepth  int    // negative means the scene's own depth
	Workers   int    // negative means GLIMMER_WORKERS
	Mode      string
	Clamp     bool
	Format    string
	Thumb     uint
	Upload    bool
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene ID, scene file name, or path to a .json scene file")
	width := flag.Int("width", 0, "Image width (default: scene setting)")
	height := flag.Int("height", 0, "Image height (default: scene setting)")
	aa := flag.String("aa", "", "Antialiasing: 'on', 'off' or an NxN grid size (default: scene setting)")
	depth := flag.Int("depth", -1, "Maximum reflection depth (default: scene setting)")
	workers := flag.Int("workers", -1, "Number of parallel workers, 0 for one per CPU (default: GLIMMER_WORKERS)")
	mode := flag.String("mode", "lit", "Shading mode: 'lit' or 'depth'")
	clamp := flag.Bool("clamp", false, "Clamp diffuse lighting from lights behind the surface")
	format := flag.String("format", "png", "Output format: 'png' or 'jpg'")
	thumb := flag.Uint("thumb", 0, "Also write a thumbnail that fits in NxN pixels")
	upload := flag.Bool("upload", false, "Upload the render to the configured S3 bucket")
	envFile := flag.String("env", ".env", "Environment file to load")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(os.Stdout); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		os.Exit(1)
	}

	opts := options{
		Scene:     *sceneType,
		Width:     *width,
		Height:    *height,
		Antialias: *aa,
		MaxDepth:  *depth,
		Workers:   *workers,
		Mode:      *mode,
		Clamp:     *clamp,
		Format:    *format,
		Thumb:     *thumb,
		Upload:    *upload,
	}

	fmt.Println("Starting Glimmer...")
	if _, err := run(context.Background(), cfg, opts, core.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Glimmer Raytracer")
	fmt.Println("Usage: glimmer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltInScenes() {
		fmt.Printf("  %-11s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <name>      - A scene file from the scenes/ directory")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// listScenes writes every scene grouped the way the web UI shows them
func listScenes(w io.Writer) error {
	response, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "  %-24s %s\n", info.ID, info.DisplayName)
		}
	}
	return nil
}

// createScene resolves a scene ID, name or file path
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, errors.New("scene name is empty")
	}
	return scene.Create(sceneType)
}

// setupRaytracer applies the options over the scene's own settings
func setupRaytracer(s *scene.Scene, cfg *config.Config, opts options, logger core.Logger) (*renderer.Raytracer, error) {
	sampling := s.SamplingConfig
	if opts.Width > 0 {
		sampling.Width = opts.Width
	}
	if opts.Height > 0 {
		sampling.Height = opts.Height
	}
	if opts.MaxDepth >= 0 {
		sampling.MaxDepth = opts.MaxDepth
	}
	grid := 1
	if sampling.Antialias {
		grid = 2
	}
	switch opts.Antialias {
	case "":
	case "on":
		grid = 2
	case "off":
		grid = 1
	default:
		n, err := strconv.Atoi(opts.Antialias)
		if err != nil || n < 1 || n > renderer.MaxGridSize {
			return nil, fmt.Errorf("invalid antialiasing setting %q (want on, off or a grid size 1-%d)", opts.Antialias, renderer.MaxGridSize)
		}
		grid = n
	}

	shading := renderer.DefaultShadingConfig()
	shading.MaxDepth = sampling.MaxDepth
	shading.Epsilon = cfg.Epsilon
	shading.ClampBackfacing = opts.Clamp
	switch opts.Mode {
	case "", "lit":
		shading.Mode = renderer.ShadeLit
	case "depth":
		shading.Mode = renderer.ShadeDepth
	default:
		return nil, fmt.Errorf("invalid shading mode %q (want lit or depth)", opts.Mode)
	}

	rt := renderer.NewRaytracer(s, sampling.Width, sampling.Height)
	rt.SetShadingConfig(shading)
	rt.SetKernel(renderer.GridKernel(grid))
	workers := cfg.Workers
	if opts.Workers >= 0 {
		workers = opts.Workers
	}
	rt.SetNumWorkers(workers)
	rt.SetLogger(logger)
	return rt, nil
}

// run renders one scene and writes the result; it returns the saved path
func run(ctx context.Context, cfg *config.Config, opts options, logger core.Logger) (string, error) {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return "", err
	}

	var uploader *output.S3Uploader
	if opts.Upload {
		if uploader, err = output.NewS3Uploader(cfg.S3, logger); err != nil {
			return "", fmt.Errorf("cannot upload: %w", err)
		}
	}

	s, err := createScene(opts.Scene)
	if err != nil {
		return "", err
	}
	logger.Printf("Using %s scene (%d primitives, %d lights)...\n", s.Name, s.GetPrimitiveCount(), len(s.GetLights()))

	rt, err := setupRaytracer(s, cfg, opts, logger)
	if err != nil {
		return "", err
	}

	frame, stats := rt.Render()
	logger.Printf("Samples per pixel: %d, %.0f rays/s, average luminance %.3f\n",
		stats.SamplesPerPixel, stats.RaysPerSecond(), renderer.CalculateAverageLuminance(frame.RGBA()))

	now := time.Now()
	filename := output.RenderPath(cfg.OutputDir, s.Name, format, now)
	var img image.Image = frame.RGBA()
	if err := output.Save(img, filename); err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s\n", filename)

	files := []string{filename}
	if opts.Thumb > 0 {
		thumbName := output.ThumbnailPath(filename)
		if err := output.Save(output.Thumbnail(img, opts.Thumb), thumbName); err != nil {
			return "", err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbName)
		files = append(files, thumbName)
	}

	if uploader != nil {
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return "", err
			}
			rel, err := filepath.Rel(cfg.OutputDir, f)
			if err != nil {
				return "", err
			}
			if err := uploader.Put(ctx, filepath.ToSlash(rel), data, output.ContentType(format)); err != nil {
				return "", err
			}
		}
	}

	return filename, nil
}
