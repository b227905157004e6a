package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_BeforeInit(t *testing.T) {
	t.Run("defaults to warn level", func(t *testing.T) {
		assert.Equal(t, zerolog.WarnLevel, Logger().GetLevel())
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("known levels", func(t *testing.T) {
		assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
		assert.Equal(t, zerolog.InfoLevel, ParseLevel("INFO"))
		assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
		assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
		assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		assert.Equal(t, zerolog.WarnLevel, ParseLevel("loud"))
	})
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })

	t.Run("json format writes structured events", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: "debug", Format: "json", Output: &buf})

		Debug().Str("title", "Heat").Msg("movie added")

		var event map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
		assert.Equal(t, "debug", event["level"])
		assert.Equal(t, "Heat", event["title"])
		assert.Equal(t, "movie added", event["message"])
	})

	t.Run("events below level are dropped", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: "warn", Format: "json", Output: &buf})

		Info().Msg("hidden")
		Warn().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
