package parser

import (
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

// YAML decodes YAML documents using gopkg.in/yaml.v3.
type YAML struct {
	QueryDict
}

func (YAML) ParseBody(_ *http.Request, body []byte) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return data, nil
}
