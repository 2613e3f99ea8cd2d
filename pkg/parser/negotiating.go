package parser

import (
	"net/http"
	"strings"

	"github.com/elnormous/contenttype"
)

// Negotiating selects the body parser by the request's Content-Type media
// type and falls back to a default parser. Query handling is always the
// default parser's.
type Negotiating struct {
	fallback Parser
	formats  map[string]Parser
}

// NegotiatingOption registers formats on a Negotiating parser.
type NegotiatingOption func(*Negotiating)

// WithFormat registers p for a media type such as "application/yaml".
func WithFormat(mediaType string, p Parser) NegotiatingOption {
	return func(n *Negotiating) {
		if p != nil && mediaType != "" {
			n.formats[strings.ToLower(mediaType)] = p
		}
	}
}

// NewNegotiating creates a parser that dispatches on Content-Type.
// A nil fallback means JSON.
func NewNegotiating(fallback Parser, opts ...NegotiatingOption) *Negotiating {
	if fallback == nil {
		fallback = JSON{}
	}
	n := &Negotiating{
		fallback: fallback,
		formats:  make(map[string]Parser),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// DefaultFormats registers every built-in format under its common media types.
func DefaultFormats() []NegotiatingOption {
	return []NegotiatingOption{
		WithFormat("application/json", JSON{}),
		WithFormat("application/yaml", YAML{}),
		WithFormat("application/x-yaml", YAML{}),
		WithFormat("text/yaml", YAML{}),
		WithFormat("application/toml", TOML{}),
		WithFormat("application/msgpack", MsgPack{}),
		WithFormat("application/x-msgpack", MsgPack{}),
		WithFormat("application/vnd.msgpack", MsgPack{}),
	}
}

// NewDefaultNegotiating falls back to JSON and accepts every built-in format.
func NewDefaultNegotiating() *Negotiating {
	return NewNegotiating(JSON{}, DefaultFormats()...)
}

func (n *Negotiating) ParseBody(r *http.Request, body []byte) (map[string]any, error) {
	return n.pick(r).ParseBody(r, body)
}

func (n *Negotiating) ParseQueryDict(data MultiValueDict, collectionFields map[string]struct{}, aliases map[string]string) map[string]any {
	return n.fallback.ParseQueryDict(data, collectionFields, aliases)
}

// pick matches the exact media type first, then a structured syntax suffix
// such as "application/problem+json" against "application/json".
func (n *Negotiating) pick(r *http.Request) Parser {
	if r == nil || r.Header.Get("Content-Type") == "" {
		return n.fallback
	}
	mt, err := contenttype.GetMediaType(r)
	if err != nil {
		return n.fallback
	}

	typ, subtype := strings.ToLower(mt.Type), strings.ToLower(mt.Subtype)
	if p, ok := n.formats[typ+"/"+subtype]; ok {
		return p
	}
	if _, suffix, ok := strings.Cut(subtype, "+"); ok {
		if p, ok := n.formats["application/"+suffix]; ok {
			return p
		}
	}
	return n.fallback
}
