package parambind

import (
	"log/slog"

	"github.com/dmitrymomot/parambind/pkg/logger"
	"github.com/dmitrymomot/parambind/pkg/params"
	"github.com/dmitrymomot/parambind/pkg/parser"
)

// API is the framework handle passed to parameter models. It carries the
// body parser, the debug flag, the logger and the body size limit.
// An API is immutable and safe for concurrent use.
type API struct {
	parser      parser.Parser
	debug       bool
	logger      *slog.Logger
	maxBodySize int64
}

var _ params.API = (*API)(nil)

// Option configures an API.
type Option func(*API)

// WithParser sets the body and query parser. Nil is ignored.
func WithParser(p parser.Parser) Option {
	return func(a *API) {
		if p != nil {
			a.parser = p
		}
	}
}

// WithDebug includes decoder details in client-facing body errors.
func WithDebug(debug bool) Option {
	return func(a *API) { a.debug = debug }
}

// WithLogger sets the logger used for resolution and error reporting. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMaxBodySize limits how many body bytes a body model reads.
// Non-positive values keep the default.
func WithMaxBodySize(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}

// New creates an API. Without options it parses JSON, logs nothing and
// limits bodies to params.DefaultMaxBodySize.
func New(opts ...Option) *API {
	a := &API{
		parser:      parser.JSON{},
		logger:      logger.Discard(),
		maxBodySize: params.DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Parser() parser.Parser { return a.parser }

func (a *API) Debug() bool { return a.debug }

func (a *API) Logger() *slog.Logger { return a.logger }

func (a *API) MaxBodySize() int64 { return a.maxBodySize }
