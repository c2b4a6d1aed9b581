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
	t.Run("Reads values from a yaml file", func(t *testing.T) {
		// Given: a config file on disk
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
log-file: /tmp/tictactoe-test.log
bot-delay: 250ms
search-cache:
  enabled: true
  host: redis.local
  port: "6380"
  ttl: 1h
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/tictactoe-test.log", conf.LogFile)
		assert.Equal(t, 250*time.Millisecond, conf.BotDelay)
		assert.True(t, conf.SearchCache.Enabled)
		assert.Equal(t, "redis.local:6380", conf.SearchCache.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.SearchCache.TTL)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// Given: a log file set through the environment only
		t.Setenv("TICTACTOE_LOG_FILE", filepath.Join(t.TempDir(), "game.log"))

		// When: loading without a path
		conf, err := Load("")

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 400*time.Millisecond, conf.BotDelay)
		assert.False(t, conf.SearchCache.Enabled)
		assert.Equal(t, "localhost:6379", conf.SearchCache.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.SearchCache.TTL)
	})

	t.Run("Environment overrides the defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_FILE", filepath.Join(t.TempDir(), "game.log"))
		t.Setenv("TICTACTOE_BOT_DELAY", "1s")
		t.Setenv("TICTACTOE_CACHE_ENABLED", "true")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, time.Second, conf.BotDelay)
		assert.True(t, conf.SearchCache.Enabled)
	})

	t.Run("Error on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})
}

func TestPath(t *testing.T) {
	t.Run("Explicit path wins", func(t *testing.T) {
		assert.Equal(t, "/etc/tictactoe.yml", Path("/etc/tictactoe.yml"))
	})
}
