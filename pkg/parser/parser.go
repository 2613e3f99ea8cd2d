package parser

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Parser decodes request payloads and multi-valued containers.
// Implementations must be safe for concurrent use.
type Parser interface {
	// ParseBody decodes a non-empty request body into a mapping.
	ParseBody(r *http.Request, body []byte) (map[string]any, error)
	// ParseQueryDict reduces a multi-valued container to a mapping, reading
	// collection fields (by name or alias) as lists.
	ParseQueryDict(data MultiValueDict, collectionFields map[string]struct{}, aliases map[string]string) map[string]any
}

// Format names accepted by ByName.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTOML    = "toml"
	FormatMsgPack = "msgpack"
)

// ByName returns the parser registered for a body format name.
func ByName(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatJSON:
		return JSON{}, nil
	case FormatYAML, "yml":
		return YAML{}, nil
	case FormatTOML:
		return TOML{}, nil
	case FormatMsgPack, "messagepack":
		return MsgPack{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
