// Package config loads typed configuration from environment variables.
//
// It combines `github.com/joho/godotenv` for .env file loading with
// `github.com/caarlos0/env/v11` for struct parsing, and caches each parsed
// configuration type so the environment is only consulted once per type for
// the lifetime of the process.
//
// # Usage
//
// Annotate a struct with env tags and load it:
//
//	type SMTPConfig struct {
//	    Host string `env:"SMTP_HOST,required"`
//	    Port int    `env:"SMTP_PORT" envDefault:"587"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// LoadEnv reads one or more .env files before parsing; Load falls back to the
// default .env in the working directory. MustLoad panics on failure for
// configuration the process cannot start without. Reset clears the cache,
// which tests use to re-parse a type after changing the environment.
package config
