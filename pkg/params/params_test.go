package params_test

import (
	"log/slog"

	"github.com/dmitrymomot/parambind/pkg/parser"
	"github.com/dmitrymomot/parambind/pkg/validator"
)

type testAPI struct {
	parser parser.Parser
	debug  bool
	limit  int64
	log    *slog.Logger
}

func (a testAPI) Parser() parser.Parser { return a.parser }
func (a testAPI) Debug() bool           { return a.debug }
func (a testAPI) MaxBodySize() int64    { return a.limit }
func (a testAPI) Logger() *slog.Logger  { return a.log }

// searchParams is a query model with an aliased collection and a defaulted scalar.
type searchParams struct {
	Tags  []string `json:"tags" alias:"t"`
	Limit int      `json:"limit" default:"10"`
	Sort  string   `json:"sort" alias:"s"`
}

type slugFilters struct {
	SlugIn   []string `json:"slug__in" alias:"slugs"`
	Category string   `json:"category"`
}

func (f slugFilters) Validate() error {
	return validator.Apply(validator.MaxItems("slugs", f.SlugIn, 3))
}

type filterQuery struct {
	Filters slugFilters `json:"filters" param:"nested"`
}

// ownedFilters carries an inner default and a required field.
type ownedFilters struct {
	Slugs []string `json:"slugs"`
	Limit int      `json:"limit" default:"10"`
	Owner string   `json:"owner" param:"required"`
}

type ownedQuery struct {
	Filters ownedFilters `json:"f" param:"nested"`
}

type authHeaders struct {
	Token   string   `json:"x-token" alias:"authorization"`
	Accept  []string `json:"accept"`
	TraceID string   `json:"x-trace-id"`
}

type session struct {
	ID    string `json:"sid"`
	Theme string `json:"theme" default:"light"`
}

type article struct {
	Title  string            `json:"title" param:"required"`
	Views  int               `json:"views"`
	Draft  bool              `json:"draft"`
	Tags   []string          `json:"tags"`
	Author map[string]string `json:"author"`
}
