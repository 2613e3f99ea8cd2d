package parser_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/dmitrymomot/parambind/pkg/parser"
)

func TestJSON_ParseBody(t *testing.T) {
	t.Parallel()

	t.Run("object", func(t *testing.T) {
		t.Parallel()
		got, err := parser.JSON{}.ParseBody(nil, []byte(`{"name":"go","limit":9007199254740993,"tags":["a"],"meta":{"x":true}}`))
		require.NoError(t, err)
		assert.Equal(t, "go", got["name"])
		assert.Equal(t, json.Number("9007199254740993"), got["limit"])
		assert.Equal(t, []any{"a"}, got["tags"])
		assert.Equal(t, map[string]any{"x": true}, got["meta"])
	})

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"syntax error", `{"name":`, "unexpected EOF"},
		{"invalid character", `{name:"go"}`, "invalid character"},
		{"array payload", `[1,2]`, "cannot unmarshal array"},
		{"trailing data", `{"a":1}{"b":2}`, "unexpected data after JSON object"},
		{"whitespace only", `   `, "empty body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.JSON{}.ParseBody(nil, []byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrInvalidJSON)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestYAML_ParseBody(t *testing.T) {
	t.Parallel()

	got, err := parser.YAML{}.ParseBody(nil, []byte("name: go\nlimit: 5\ntags:\n  - a\n  - b\nmeta:\n  x: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "go", got["name"])
	assert.Equal(t, 5, got["limit"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.Equal(t, map[string]any{"x": true}, got["meta"])

	_, err = parser.YAML{}.ParseBody(nil, []byte("name: [unclosed"))
	assert.ErrorIs(t, err, parser.ErrInvalidYAML)

	_, err = parser.YAML{}.ParseBody(nil, []byte("- a\n- b\n"))
	assert.ErrorIs(t, err, parser.ErrInvalidYAML)
}

func TestTOML_ParseBody(t *testing.T) {
	t.Parallel()

	got, err := parser.TOML{}.ParseBody(nil, []byte("name = \"go\"\nlimit = 5\ntags = [\"a\", \"b\"]\n\n[meta]\nx = true\n"))
	require.NoError(t, err)
	assert.Equal(t, "go", got["name"])
	assert.Equal(t, int64(5), got["limit"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.Equal(t, map[string]any{"x": true}, got["meta"])

	_, err = parser.TOML{}.ParseBody(nil, []byte("name = "))
	assert.ErrorIs(t, err, parser.ErrInvalidTOML)
}

func TestMsgPack_ParseBody(t *testing.T) {
	t.Parallel()

	body, err := msgpack.Marshal(map[string]any{
		"name":  "go",
		"limit": 5,
		"tags":  []string{"a", "b"},
	})
	require.NoError(t, err)

	got, err := parser.MsgPack{}.ParseBody(nil, body)
	require.NoError(t, err)
	assert.Equal(t, "go", got["name"])
	assert.EqualValues(t, 5, got["limit"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])

	_, err = parser.MsgPack{}.ParseBody(nil, []byte{0xc1})
	assert.ErrorIs(t, err, parser.ErrInvalidMsgPack)
}

func TestByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]parser.Parser{
		"":        parser.JSON{},
		"JSON":    parser.JSON{},
		"yaml":    parser.YAML{},
		"yml":     parser.YAML{},
		"toml":    parser.TOML{},
		"msgpack": parser.MsgPack{},
	} {
		got, err := parser.ByName(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, got, name)
	}

	_, err := parser.ByName("xml")
	assert.ErrorIs(t, err, parser.ErrUnknownFormat)
}

func TestNegotiating(t *testing.T) {
	t.Parallel()

	p := parser.NewDefaultNegotiating()

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json", "application/json; charset=utf-8", `{"name":"go"}`},
		{"yaml", "application/yaml", "name: go\n"},
		{"toml", "application/toml", "name = \"go\"\n"},
		{"upper case media type", "Application/YAML", "name: go\n"},
		{"structured suffix", "application/problem+json", `{"name":"go"}`},
		{"yaml suffix", "application/vnd.config+yaml", "name: go\n"},
		{"missing content type falls back to json", "", `{"name":"go"}`},
		{"unknown content type falls back to json", "text/plain", `{"name":"go"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			got, err := p.ParseBody(req, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, "go", got["name"])
		})
	}

	t.Run("msgpack", func(t *testing.T) {
		t.Parallel()
		body, err := msgpack.Marshal(map[string]any{"name": "go"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/x-msgpack")
		got, err := p.ParseBody(req, body)
		require.NoError(t, err)
		assert.Equal(t, "go", got["name"])
	})

	t.Run("query handling uses fallback", func(t *testing.T) {
		t.Parallel()
		got := p.ParseQueryDict(parser.Values{"a": {"1", "2"}}, nil, nil)
		assert.Equal(t, map[string]any{"a": "2"}, got)
	})

	t.Run("nil fallback is json", func(t *testing.T) {
		t.Parallel()
		n := parser.NewNegotiating(nil, parser.WithFormat("", parser.YAML{}), parser.WithFormat("application/yaml", nil))
		got, err := n.ParseBody(nil, []byte(`{"name":"go"}`))
		require.NoError(t, err)
		assert.Equal(t, "go", got["name"])
	})
}
