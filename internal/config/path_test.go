package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("empty path", func(t *testing.T) {
		assert.Equal(t, "", ExpandPath(""))
	})

	t.Run("absolute path unchanged", func(t *testing.T) {
		assert.Equal(t, "/var/lib/hindsight.db", ExpandPath("/var/lib/hindsight.db"))
	})

	t.Run("bare tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("tilde prefix", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, ".config", "hindsight"), ExpandPath("~/.config/hindsight"))
	})

	t.Run("environment variables expanded", func(t *testing.T) {
		t.Setenv("HINDSIGHT_TEST_DIR", "/srv/data")
		assert.Equal(t, "/srv/data/ledger.db", ExpandPath("$HINDSIGHT_TEST_DIR/ledger.db"))
	})
}

func TestDefaultPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "hindsight", "hindsight.db"), DefaultDatabasePath())
	assert.Equal(t, filepath.Join(home, ".config", "hindsight", "gmail-token.json"), DefaultTokenPath())
}
