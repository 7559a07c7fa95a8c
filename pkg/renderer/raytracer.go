package renderer

import (
	"time"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
)

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     ShadingConfig
	kernel     Kernel
	numWorkers int
	logger     core.Logger
}

// NewRaytracer creates a new raytracer with the default shading model, a
// single sample per pixel and one worker per CPU
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultShadingConfig(),
		kernel: SingleSample(),
		logger: core.NopLogger{},
	}
}

// SetShadingConfig updates the shading configuration
func (rt *Raytracer) SetShadingConfig(config ShadingConfig) {
	rt.config = config
}

// GetShadingConfig returns the current shading configuration
func (rt *Raytracer) GetShadingConfig() ShadingConfig {
	return rt.config
}

// SetKernel sets the antialiasing kernel; an empty kernel means one sample
func (rt *Raytracer) SetKernel(kernel Kernel) {
	if len(kernel) == 0 {
		kernel = SingleSample()
	}
	rt.kernel = kernel
}

// SetNumWorkers sets the number of parallel workers; zero or less uses one per CPU
func (rt *Raytracer) SetNumWorkers(n int) {
	rt.numWorkers = n
}

// SetLogger sets the logger for progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// Render renders the whole frame and returns it with statistics
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(rt.width, rt.height)
	camera := NewCamera(rt.width, rt.height)

	pool := NewWorkerPool(frame, rt.numWorkers)
	rt.logger.Printf("Rendering %dx%d with %d samples per pixel (using %d workers)...\n",
		rt.width, rt.height, len(rt.kernel), pool.GetNumWorkers())

	counts := make([]RayCounts, pool.GetNumWorkers())
	pool.Run(func(worker int, band RowBand, pix []byte) {
		shader := NewShader(rt.scene, rt.config)
		stride := rt.width * 3
		for y := band.Start; y < band.End; y++ {
			row := pix[(y-band.Start)*stride : (y-band.Start+1)*stride]
			for x := 0; x < rt.width; x++ {
				putPixel(row, x, rt.samplePixel(shader, camera, x, y))
			}
		}
		counts[worker] = shader.Counts()
	})

	stats := RenderStats{
		TotalPixels:     rt.width * rt.height,
		SamplesPerPixel: len(rt.kernel),
		TotalSamples:    rt.width * rt.height * len(rt.kernel),
		NumWorkers:      pool.GetNumWorkers(),
		Duration:        time.Since(start),
	}
	for _, c := range counts {
		stats.Rays = stats.Rays.Add(c)
	}

	rt.logger.Printf("Render completed in %v (%d shade calls, %d shadow rays, %d reflection rays)\n",
		stats.Duration, stats.Rays.ShadeCalls, stats.Rays.ShadowRays, stats.Rays.ReflectionRays)
	return frame, stats
}

// samplePixel returns the kernel-weighted colour of pixel (x, y)
func (rt *Raytracer) samplePixel(shader *Shader, camera *Camera, x, y int) core.Color {
	var c core.Color
	for _, s := range rt.kernel {
		ray := camera.GetRay(float64(x)+s.DX, float64(y)+s.DY)
		c = c.Add(shader.ShadePrimary(ray).Multiply(s.Weight))
	}
	return c
}

// PixelColor returns the unclamped colour of one pixel
func (rt *Raytracer) PixelColor(x, y int) core.Color {
	shader := NewShader(rt.scene, rt.config)
	return rt.samplePixel(shader, NewCamera(rt.width, rt.height), x, y)
}

// PixelInspection describes what the primary ray through a pixel sees
type PixelInspection struct {
	X        int           `json:"x"`
	Y        int           `json:"y"`
	Ray      core.Ray      `json:"ray"`
	Hit      bool          `json:"hit"`
	Kind     string        `json:"kind,omitempty"`
	Position core.Vec3     `json:"position"`
	Normal   core.Vec3     `json:"normal"`
	Distance float64       `json:"distance"`
	UV       core.Vec2     `json:"uv"`
	Material *MaterialInfo `json:"material,omitempty"`
	Color    core.Color    `json:"color"`
	RGB      [3]uint8      `json:"rgb"`
	Rays     RayCounts     `json:"rays"`
}

// MaterialInfo is the material at an inspected hit
type MaterialInfo struct {
	Texture      string     `json:"texture"`
	BaseColor    core.Color `json:"baseColor"`
	Diffuse      float64    `json:"diffuse"`
	Reflectivity float64    `json:"reflectivity"`
}

// Inspect reports the nearest hit of the primary ray through the corner of
// pixel (x, y) along with the colour the frame shows for that pixel
func (rt *Raytracer) Inspect(x, y int) PixelInspection {
	camera := NewCamera(rt.width, rt.height)
	ray := camera.GetRay(float64(x), float64(y))

	result := PixelInspection{X: x, Y: y, Ray: ray}
	if hit, ok := rt.scene.CastRay(ray); ok {
		fillInspection(&result, hit)
	}

	shader := NewShader(rt.scene, rt.config)
	result.Color = rt.samplePixel(shader, camera, x, y)
	result.RGB[0], result.RGB[1], result.RGB[2] = result.Color.ToRGB8()
	result.Rays = shader.Counts()
	return result
}

func fillInspection(result *PixelInspection, hit *geometry.Hit) {
	result.Hit = true
	result.Kind = hit.Kind.String()
	result.Position = hit.Position
	result.Normal = hit.Normal
	result.Distance = hit.Distance
	result.UV = hit.UV

	tex := hit.Material.Texture()
	result.Material = &MaterialInfo{
		Texture:      tex.Name(),
		BaseColor:    tex.Evaluate(hit.UV),
		Diffuse:      hit.Material.Diffuse(),
		Reflectivity: hit.Material.Reflectivity(),
	}
}

// Render renders scene at the given size with the default shading model,
// the given kernel and one worker per CPU
func Render(scene Scene, width, height int, kernel Kernel) *Frame {
	rt := NewRaytracer(scene, width, height)
	rt.SetKernel(kernel)
	frame, _ := rt.Render()
	return frame
}
