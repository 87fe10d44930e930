package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the defaults are used
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, 300*time.Millisecond, conf.ComputerDelay)
		assert.Equal(t, int64(0), conf.Seed)
		assert.False(t, conf.NoColor)
	})

	t.Run("Values from the file", func(t *testing.T) {
		// Given: a config file overriding every field
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ncomputer-delay: 1s\nseed: 42\nno-color: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the file values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, time.Second, conf.ComputerDelay)
		assert.Equal(t, int64(42), conf.Seed)
		assert.True(t, conf.NoColor)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment variables and no file
		t.Setenv("TTT_COMPUTER_DELAY", "0s")
		t.Setenv("TTT_SEED", "9")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the environment wins
		assert.Equal(t, time.Duration(0), conf.ComputerDelay)
		assert.Equal(t, int64(9), conf.Seed)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		// Given: a file with an invalid duration
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("computer-delay: soon\n"), 0o600))

		// When: loading the config
		_, err := Load(path)

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
