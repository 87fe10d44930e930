package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"TTT_COMPUTER_DELAY" env-default:"300ms"`
	Seed          int64         `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	NoColor       bool          `yaml:"no-color" env:"TTT_NO_COLOR" env-default:"false"`
}

// MustLoad - load configuration from the yml file at path, falling back to environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
