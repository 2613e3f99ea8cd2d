package parambind_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/parambind"
	"github.com/dmitrymomot/parambind/pkg/config"
	"github.com/dmitrymomot/parambind/pkg/parser"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	api, err := parambind.NewFromConfig(parambind.Config{
		Debug:       true,
		BodyFormat:  "toml",
		MaxBodySize: 512,
		Env:         "development",
	})
	require.NoError(t, err)

	assert.Equal(t, parser.TOML{}, api.Parser())
	assert.True(t, api.Debug())
	assert.Equal(t, int64(512), api.MaxBodySize())
	assert.True(t, api.Logger().Enabled(context.Background(), slog.LevelDebug))
}

func TestNewFromConfig_Negotiate(t *testing.T) {
	t.Parallel()

	api, err := parambind.NewFromConfig(parambind.Config{BodyFormat: "yaml", Negotiate: true})
	require.NoError(t, err)
	assert.IsType(t, &parser.Negotiating{}, api.Parser())
}

func TestNewFromConfig_LogOverrides(t *testing.T) {
	t.Parallel()

	api, err := parambind.NewFromConfig(parambind.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
	})
	require.NoError(t, err)
	assert.False(t, api.Logger().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, api.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestNewFromConfig_OptionsApplyLast(t *testing.T) {
	t.Parallel()

	api, err := parambind.NewFromConfig(parambind.Config{Debug: true}, parambind.WithDebug(false))
	require.NoError(t, err)
	assert.False(t, api.Debug())
}

func TestNewFromConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  parambind.Config
		want error
	}{
		{"unknown body format", parambind.Config{BodyFormat: "xml"}, parser.ErrUnknownFormat},
		{"bad log level", parambind.Config{LogLevel: "loud"}, nil},
		{"bad log format", parambind.Config{LogFormat: "xml"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			api, err := parambind.NewFromConfig(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, api)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PARAMBIND_DEBUG", "true")
	t.Setenv("PARAMBIND_BODY_FORMAT", "msgpack")
	t.Setenv("PARAMBIND_MAX_BODY_SIZE", "2048")
	t.Setenv("PARAMBIND_ENV", "staging")
	t.Setenv("PARAMBIND_SERVICE", "orders")

	cfg, err := parambind.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, parambind.Config{
		Debug:       true,
		BodyFormat:  "msgpack",
		MaxBodySize: 2048,
		Env:         "staging",
		Service:     "orders",
	}, cfg)

	api, err := parambind.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, parser.MsgPack{}, api.Parser())
	assert.True(t, api.Debug())
	assert.Equal(t, int64(2048), api.MaxBodySize())
}

func TestNewFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("PARAMBIND_MAX_BODY_SIZE", "big")

	_, err := parambind.NewFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
