// Package config loads and validates libpack configuration.
//
// Configuration is read from a TOML file, with defaults applied for anything
// unset. Paths are expanded (~ and relative forms) and normalized during load
// so the rest of the codebase can treat them as absolute. The package also
// owns the sample configuration written by `libpack config init`.
package config
