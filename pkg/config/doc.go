// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing.
//
// Load caches each configuration type for the lifetime of the process, while
// Parse always reads the current environment and accepts a variable prefix:
//
//	type Settings struct {
//	    Debug       bool   `env:"DEBUG"`
//	    BodyFormat  string `env:"BODY_FORMAT" envDefault:"json"`
//	    MaxBodySize int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`
//	}
//
//	s, err := config.Parse[Settings](config.WithPrefix("PARAMBIND_"))
//
// LoadEnv reads one or more .env files into the process environment without
// overriding variables that are already set. ResetCache clears cached values
// between tests.
package config
