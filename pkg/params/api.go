package params

import (
	"log/slog"

	"github.com/dmitrymomot/parambind/pkg/parser"
)

// DefaultMaxBodySize caps request bodies when the API does not set a limit.
const DefaultMaxBodySize int64 = 1 << 20

// API is the framework handle passed to Resolve.
type API interface {
	// Parser decodes request bodies and multi-valued containers.
	Parser() parser.Parser
	// Debug enables decoder details in client-facing error messages.
	Debug() bool
}

// Optional capabilities an API may implement.
type (
	bodyLimiter interface {
		MaxBodySize() int64
	}

	loggerProvider interface {
		Logger() *slog.Logger
	}
)

func maxBodySize(api API) int64 {
	if l, ok := api.(bodyLimiter); ok {
		if n := l.MaxBodySize(); n > 0 {
			return n
		}
	}
	return DefaultMaxBodySize
}

func apiLogger(api API) *slog.Logger {
	if p, ok := api.(loggerProvider); ok {
		if log := p.Logger(); log != nil {
			return log
		}
	}
	return nil
}

func apiParser(api API) parser.Parser {
	if api != nil {
		if p := api.Parser(); p != nil {
			return p
		}
	}
	return parser.JSON{}
}
