package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadEmptyPath verifies a bare run consults no file and gets the defaults.
func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultGreeting, cfg.Greeting)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.False(t, cfg.SkipWait)
}

// TestLoadMissingFile verifies an explicit path that does not exist is an error.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// TestSaveAndLoadRoundTrip verifies settings survive a write/read cycle
// and omitted fields are defaulted on load.
func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, Save(path, &Config{
		Greeting: "Hello from the test suite!",
		SkipWait: true,
	}))

	// Restricted permissions are applied on write.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Hello from the test suite!", cfg.Greeting)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.True(t, cfg.SkipWait)
}

// TestValidateRejectsUnknownLogLevel verifies bad levels are caught before use.
func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(&Config{LogLevel: "loud"}))
	require.Error(t, Validate(nil))
}
