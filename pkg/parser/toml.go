package parser

import (
	"fmt"
	"net/http"

	"github.com/BurntSushi/toml"
)

// TOML decodes TOML documents using github.com/BurntSushi/toml.
type TOML struct {
	QueryDict
}

func (TOML) ParseBody(_ *http.Request, body []byte) (map[string]any, error) {
	var data map[string]any
	if _, err := toml.Decode(string(body), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTOML, err)
	}
	return data, nil
}
