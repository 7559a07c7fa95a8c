package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings that come from the environment rather than flags
type Config struct {
	OutputDir     string  // Root directory for rendered images
	Workers       int     // Render goroutines; 0 means one per CPU
	Epsilon       float64 // Secondary ray offset
	ServerAddress string  // Listen address of the preview server
	S3            S3Config
}

// S3Config describes the optional S3-compatible render sink
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string // Key prefix for uploaded renders
}

// Enabled reports whether enough is configured to upload
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load reads envFile if it exists and then builds the configuration from
// the environment. Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from GLIMMER_* environment variables
func FromEnv() (*Config, error) {
	workers, err := strconv.Atoi(getEnv("GLIMMER_WORKERS", "0"))
	if err != nil {
		return nil, fmt.Errorf("%w: GLIMMER_WORKERS: %v", ErrInvalidConfig, err)
	}
	epsilon, err := strconv.ParseFloat(getEnv("GLIMMER_EPSILON", "1e-4"), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: GLIMMER_EPSILON: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		OutputDir:     getEnv("GLIMMER_OUTPUT_DIR", "output"),
		Workers:       workers,
		Epsilon:       epsilon,
		ServerAddress: getEnv("GLIMMER_ADDR", ":8080"),
		S3: S3Config{
			AccessKey: os.Getenv("GLIMMER_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("GLIMMER_S3_SECRET_KEY"),
			Endpoint:  os.Getenv("GLIMMER_S3_ENDPOINT"),
			Region:    getEnv("GLIMMER_S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("GLIMMER_S3_BUCKET"),
			Prefix:    getEnv("GLIMMER_S3_PREFIX", "renders/"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the consistency of the S3 settings
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}
	if c.Workers < 0 || c.Workers > 64*runtime.NumCPU() {
		return fmt.Errorf("%w: workers = %d", ErrInvalidConfig, c.Workers)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 || c.Epsilon > 0.1 {
		return fmt.Errorf("%w: epsilon %v must be in [0, 0.1]", ErrInvalidConfig, c.Epsilon)
	}
	if c.S3.Enabled() && (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
		return fmt.Errorf("%w: S3 access key and secret key must be set together", ErrInvalidConfig)
	}
	return nil
}
