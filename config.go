package parambind

import (
	"fmt"

	"github.com/dmitrymomot/parambind/pkg/config"
	"github.com/dmitrymomot/parambind/pkg/logger"
	"github.com/dmitrymomot/parambind/pkg/parser"
	"github.com/dmitrymomot/parambind/pkg/requestid"
)

// EnvPrefix is prepended to every variable read by LoadConfig.
const EnvPrefix = "PARAMBIND_"

// Config is the environment-driven API configuration.
type Config struct {
	// Debug appends decoder errors to "Cannot parse request body" messages.
	Debug bool `env:"DEBUG" envDefault:"false"`
	// BodyFormat is the default body format: json, yaml, toml or msgpack.
	BodyFormat string `env:"BODY_FORMAT" envDefault:"json"`
	// Negotiate selects the body parser by Content-Type, falling back to BodyFormat.
	Negotiate   bool  `env:"NEGOTIATE" envDefault:"false"`
	MaxBodySize int64 `env:"MAX_BODY_SIZE" envDefault:"1048576"`

	// Env picks logger defaults: development, staging or production.
	Env     string `env:"ENV" envDefault:"production"`
	Service string `env:"SERVICE"`
	// LogLevel and LogFormat override the Env defaults when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// LoadConfig reads Config from PARAMBIND_* variables and an optional .env file.
func LoadConfig() (Config, error) {
	return config.Parse[Config](config.WithPrefix(EnvPrefix))
}

// NewFromConfig builds an API from cfg. Its logger tags records with the
// request ID set by requestid.Middleware. Options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*API, error) {
	p, err := parser.ByName(cfg.BodyFormat)
	if err != nil {
		return nil, err
	}
	if cfg.Negotiate {
		p = parser.NewNegotiating(p, parser.DefaultFormats()...)
	}

	logOpts := []logger.Option{logger.WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	logOpts = append(logOpts,
		logger.WithAttr(logger.Component("parambind")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	base := []Option{
		WithParser(p),
		WithDebug(cfg.Debug),
		WithMaxBodySize(cfg.MaxBodySize),
		WithLogger(logger.New(logOpts...)),
	}
	return New(append(base, opts...)...), nil
}

// NewFromEnv is NewFromConfig over LoadConfig.
func NewFromEnv(opts ...Option) (*API, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load parambind config: %w", err)
	}
	return NewFromConfig(cfg, opts...)
}
