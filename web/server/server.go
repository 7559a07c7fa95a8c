package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/glimmer/pkg/config"
	"github.com/df07/glimmer/pkg/output"
	"github.com/df07/glimmer/pkg/renderer"
	"github.com/df07/glimmer/pkg/scene"
)

// Size limits for web requests
const (
	minImageSize = 16
	maxImageSize = 2000
	maxDepth     = 10
	maxThumbSize = 1024
)

// Server handles web requests for the raytracer
type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	sink    output.Sink
	console *Console
}

// NewServer creates a new web server. sink may be nil, in which case renders
// requested with save=true are rejected.
func NewServer(cfg *config.Config, sink output.Sink) *Server {
	s := &Server{
		echo:    echo.New(),
		cfg:     cfg,
		sink:    sink,
		console: NewConsole(200),
	}
	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/scene-config", s.handleSceneConfig)
	s.echo.GET("/api/render", s.handleRender)
	s.echo.GET("/api/inspect", s.handleInspect)
	s.echo.GET("/api/console", s.handleConsole)
	return s
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server on the configured address
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.cfg.ServerAddress)
	if err := s.echo.Start(s.cfg.ServerAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(c echo.Context) error {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, scenes)
}

// handleSceneConfig returns the default settings of a scene and the request limits
func (s *Server) handleSceneConfig(c echo.Context) error {
	id := c.QueryParam("scene")
	if id == "" {
		id = "default"
	}
	sceneObj, err := s.createScene(id)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	cfg := sceneObj.SamplingConfig
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scene": id,
		"defaults": map[string]interface{}{
			"width":     cfg.Width,
			"height":    cfg.Height,
			"maxDepth":  cfg.MaxDepth,
			"antialias": cfg.Antialias,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"maxDepth": map[string]int{"min": 0, "max": maxDepth},
			"grid":     map[string]int{"min": 1, "max": renderer.MaxGridSize},
			"thumb":    map[string]int{"min": 0, "max": maxThumbSize},
		},
	})
}

// createScene builds a scene by registry ID or scenes-directory name.
// Paths are not accepted from web clients.
func (s *Server) createScene(id string) (*scene.Scene, error) {
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("invalid scene id %q", id)
	}
	return scene.Create(id)
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
