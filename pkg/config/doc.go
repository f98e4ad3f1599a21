// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind
// a small API:
//
//   - Load parses the environment into any struct with `env` tags, loading
//     the default .env file first when one exists.
//   - MustLoad panics on failure, for configuration the process cannot
//     start without.
//   - LoadEnv loads additional .env files explicitly; already-set process
//     variables always win over file contents.
//   - ResetCache clears the per-type cache, which tests need after
//     mutating the environment.
//
// Each configuration type is parsed at most once per process and cached by
// value, so components loading the same struct type always observe
// identical configuration.
//
// Usage:
//
//	type ServerConfig struct {
//	    Addr          string `env:"HTTP_ADDR" envDefault:":8080"`
//	    JWTSecret     string `env:"JWT_SECRET,required"`
//	    DefaultTenant string `env:"DEFAULT_TENANT_ID"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Errors are joined with sentinel values (ErrParsingConfig, ErrNilPointer,
// ErrConfigNotLoaded) and can be inspected with errors.Is.
package config
