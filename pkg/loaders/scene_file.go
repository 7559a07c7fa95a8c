package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SceneFile is the on-disk JSON description of a scene
type SceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Group       string                  `json:"group"`
	Width       int                     `json:"width"`
	Height      int                     `json:"height"`
	Materials   map[string]MaterialSpec `json:"materials"`
	Spheres     []SphereSpec            `json:"spheres"`
	Planes      []PlaneSpec             `json:"planes"`
	Lights      []LightSpec             `json:"lights"`

	// Dir is the directory of the file; relative image paths resolve here
	Dir string `json:"-"`
}

// MaterialSpec describes a material. Texture is one of "solid" (the
// default), "checker", "image" or a named procedural pattern.
type MaterialSpec struct {
	Texture      string  `json:"texture"`
	Color        string  `json:"color"`  // hex, for solid and checker
	Color2       string  `json:"color2"` // hex, second checker colour
	Scale        float64 `json:"scale"`  // checker cells per uv unit
	Image        string  `json:"image"`  // image path for "image"
	Diffuse      float64 `json:"diffuse"`
	Reflectivity float64 `json:"reflectivity"`
}

// SphereSpec describes a sphere
type SphereSpec struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// PlaneSpec describes an infinite plane
type PlaneSpec struct {
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Material string     `json:"material"`
}

// LightSpec describes a point light. Intensity scales the colour and
// defaults to 1.
type LightSpec struct {
	Position  [3]float64 `json:"position"`
	Color     string     `json:"color"`
	Intensity *float64   `json:"intensity"`
}

// ParseSceneFile decodes a JSON scene description
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var sf SceneFile
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to decode scene file: %w", err)
	}

	if sf.Width < 0 || sf.Height < 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", sf.Width, sf.Height)
	}

	return &sf, nil
}

// LoadSceneFile loads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sf, err := ParseSceneFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	sf.Dir = filepath.Dir(filename)
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return sf, nil
}

// ResolvePath returns p relative to the scene file's directory
func (sf *SceneFile) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || sf.Dir == "" {
		return p
	}
	return filepath.Join(sf.Dir, p)
}

// validateFilePath validates a file path for security issues
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	// Only allow files in a scenes/ directory or the temp directory (for tests)
	if !strings.HasPrefix(cleanPath, "scenes"+string(filepath.Separator)) &&
		!strings.HasPrefix(cleanPath, filepath.Clean(os.TempDir())) &&
		!strings.Contains(cleanPath, string(filepath.Separator)+"scenes"+string(filepath.Separator)) {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	if !strings.HasSuffix(strings.ToLower(cleanPath), ".json") {
		return fmt.Errorf("invalid file type: only .json scene files are allowed")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}
