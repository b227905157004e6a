package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cinelog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogPath(t *testing.T) {
	t.Run("respects XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data")

		assert.Equal(t, "/custom/data/cinelog/movies.json", config.DefaultCatalogPath())
	})

	t.Run("falls back to ~/.local/share when XDG_DATA_HOME is empty", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", "/home/test")

		assert.Equal(t, "/home/test/.local/share/cinelog/movies.json", config.DefaultCatalogPath())
	})

	t.Run("handles XDG_DATA_HOME with trailing slash", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data/")

		assert.Equal(t, "/custom/data/cinelog/movies.json", config.DefaultCatalogPath())
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		assert.Equal(t, "/custom/config/cinelog/config.yaml", config.DefaultConfigPath())
	})

	t.Run("falls back to ~/.config when XDG_CONFIG_HOME is empty", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/test")

		assert.Equal(t, "/home/test/.config/cinelog/config.yaml", config.DefaultConfigPath())
	})
}

func TestExpandPath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expansion with subpath", input: "~/movies.csv", expected: "/home/test/movies.csv"},
		{name: "tilde only", input: "~", expected: "/home/test"},
		{name: "relative path becomes absolute", input: "data/movies.json", expected: filepath.Join(cwd, "data/movies.json")},
		{name: "absolute path unchanged", input: "/srv/movies.yaml", expected: "/srv/movies.yaml"},
		{name: "tilde in middle not expanded", input: "foo/~/bar", expected: filepath.Join(cwd, "foo/~/bar")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", "/home/test")

			result, err := config.ExpandPath(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
