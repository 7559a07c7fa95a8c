package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/df07/glimmer/pkg/renderer"
)

// InspectResponse is the JSON body of /api/inspect
type InspectResponse struct {
	Scene  string `json:"scene"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	renderer.PixelInspection
}

// handleInspect reports what the primary ray through one pixel hits
func (s *Server) handleInspect(c echo.Context) error {
	req, sceneObj, err := s.parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	values := c.QueryParams()
	x, err := parseIntParam(values, "x", req.Width/2, 0, req.Width-1)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	y, err := parseIntParam(values, "y", req.Height/2, 0, req.Height-1)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	rt := s.newRaytracer(req, sceneObj, "inspect")
	return c.JSON(http.StatusOK, InspectResponse{
		Scene:           sceneObj.Name,
		Width:           req.Width,
		Height:          req.Height,
		PixelInspection: rt.Inspect(x, y),
	})
}
