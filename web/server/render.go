package server

import (
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"

	"github.com/df07/glimmer/pkg/output"
	"github.com/df07/glimmer/pkg/renderer"
	"github.com/df07/glimmer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string               // Scene ID
	Width    int                  // Image width
	Height   int                  // Image height
	MaxDepth int                  // Reflection recursion limit
	Grid     int                  // NxN antialiasing grid, 1 for one sample
	Mode     renderer.ShadingMode // Lit or depth
	Clamp    bool                 // Clamp back-facing diffuse
	Format   imaging.Format       // Response image format
	Thumb    int                  // Thumbnail box size, 0 for full size
	Save     bool                 // Store the render in the sink
}

// parseRenderRequest parses request parameters, using the scene's own
// settings as defaults
func (s *Server) parseRenderRequest(c echo.Context) (*RenderRequest, *scene.Scene, error) {
	values := c.QueryParams()

	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}
	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		return nil, nil, err
	}
	defaults := sceneObj.SamplingConfig

	if req.Width, err = parseIntParam(values, "width", clampSize(defaults.Width), minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if req.Height, err = parseIntParam(values, "height", clampSize(defaults.Height), minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, nil, err
	}
	antialias, err := parseBoolParam(values, "aa", defaults.Antialias)
	if err != nil {
		return nil, nil, err
	}
	defaultGrid := 1
	if antialias {
		defaultGrid = 2
	}
	if req.Grid, err = parseIntParam(values, "grid", defaultGrid, 1, renderer.MaxGridSize); err != nil {
		return nil, nil, err
	}
	if req.Clamp, err = parseBoolParam(values, "clamp", false); err != nil {
		return nil, nil, err
	}
	if req.Thumb, err = parseIntParam(values, "thumb", 0, 0, maxThumbSize); err != nil {
		return nil, nil, err
	}
	if req.Save, err = parseBoolParam(values, "save", false); err != nil {
		return nil, nil, err
	}

	switch mode := values.Get("mode"); mode {
	case "", "lit":
		req.Mode = renderer.ShadeLit
	case "depth":
		req.Mode = renderer.ShadeDepth
	default:
		return nil, nil, fmt.Errorf("invalid mode: %s", mode)
	}

	format := values.Get("format")
	if format == "" {
		format = "png"
	}
	if req.Format, err = output.ParseFormat(format); err != nil {
		return nil, nil, err
	}
	if req.Format != imaging.PNG && req.Format != imaging.JPEG {
		return nil, nil, fmt.Errorf("invalid format: %s", format)
	}

	return req, sceneObj, nil
}

func clampSize(n int) int {
	return max(minImageSize, min(maxImageSize, n))
}

// newRaytracer configures a raytracer for the request
func (s *Server) newRaytracer(req *RenderRequest, sceneObj *scene.Scene, renderID string) *renderer.Raytracer {
	rt := renderer.NewRaytracer(sceneObj, req.Width, req.Height)

	shading := renderer.DefaultShadingConfig()
	shading.MaxDepth = req.MaxDepth
	shading.Mode = req.Mode
	shading.ClampBackfacing = req.Clamp
	shading.Epsilon = s.cfg.Epsilon
	rt.SetShadingConfig(shading)

	rt.SetKernel(renderer.GridKernel(req.Grid))
	rt.SetNumWorkers(s.cfg.Workers)
	rt.SetLogger(NewWebLogger(renderID, s.console))
	return rt
}

// handleRender renders a whole frame and returns the encoded image
func (s *Server) handleRender(c echo.Context) error {
	req, sceneObj, err := s.parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}
	if req.Save && s.sink == nil {
		return jsonError(c, http.StatusBadRequest, "saving is not configured")
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	frame, stats := s.newRaytracer(req, sceneObj, renderID).Render()

	var img image.Image = frame.RGBA()
	if req.Thumb > 0 {
		img = output.Thumbnail(img, uint(req.Thumb))
	}
	data, err := output.EncodeBytes(img, req.Format)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err.Error())
	}
	contentType := output.ContentType(req.Format)

	if req.Save {
		key := filepath.ToSlash(output.RenderPath("", sceneObj.Name, req.Format, time.Now()))
		if err := s.sink.Put(c.Request().Context(), key, data, contentType); err != nil {
			return jsonError(c, http.StatusBadGateway, err.Error())
		}
		c.Response().Header().Set("X-Render-Key", key)
	}

	h := c.Response().Header()
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Render-Duration", stats.Duration.String())
	h.Set("X-Render-Workers", strconv.Itoa(stats.NumWorkers))
	h.Set("X-Render-Samples", strconv.Itoa(stats.SamplesPerPixel))
	h.Set("X-Shade-Calls", strconv.FormatInt(stats.Rays.ShadeCalls, 10))
	return c.Blob(http.StatusOK, contentType, data)
}
