package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configFile = "tictactoe/config.yml"
	logFile    = "tictactoe/tictactoe.log"
)

type Config struct {
	LogLevel    string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile     string        `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	BotDelay    time.Duration `yaml:"bot-delay" env:"TICTACTOE_BOT_DELAY" env-default:"400ms"`
	SearchCache SearchCache   `yaml:"search-cache"`
}

// SearchCache - optional Redis cache of computed bot moves.
type SearchCache struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_CACHE_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"TICTACTOE_CACHE_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_CACHE_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_CACHE_TTL" env-default:"24h"`
}

// Load - reads the config from path, or from the environment only when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.LogFile == "" {
		logPath, err := xdg.StateFile(logFile)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve log file: %w", err)
		}
		config.LogFile = logPath
	}

	return config, nil
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Path - returns the explicit path if set, otherwise the config.yml found in the XDG config dirs.
// An empty result means no config file exists and only the environment applies.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}

	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return ""
	}

	if _, err = os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ""
	}

	return path
}

func (that *SearchCache) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
