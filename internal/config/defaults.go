package config

const (
	defaultLibraryDir = "library"
	defaultOutputDir  = "dist"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			OutputDir:  defaultOutputDir,
		},
		Consolidate: Consolidate{},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
