package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LibraryDir == c.Paths.OutputDir {
		return errors.New("paths.output_dir must differ from paths.library_dir")
	}
	if c.Consolidate.MinWidth < 0 {
		return fmt.Errorf("consolidate.min_width must not be negative (got %d)", c.Consolidate.MinWidth)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
