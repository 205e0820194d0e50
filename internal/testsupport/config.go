package testsupport

import (
	"path/filepath"
	"testing"

	"libpack/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.OutputDir = filepath.Join(base, "dist")
	cfg.Paths.LogDir = ""

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithImagesOnly enables the images-only filter on the test config.
func WithImagesOnly() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Consolidate.ImagesOnly = true
	}
}

// WithMinWidth sets the minimum width threshold on the test config.
func WithMinWidth(width int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Consolidate.MinWidth = width
	}
}

// WithVerifyCopies enables SHA256 copy verification on the test config.
func WithVerifyCopies() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Consolidate.VerifyCopies = true
	}
}
