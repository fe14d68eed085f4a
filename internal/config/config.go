// Package config loads application configuration from a yaml file and
// environment variables. Every tunable the game rules expose lives
// here; packages receive values, never read files themselves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/retrytest"
)

// Config holds application configuration.
type Config struct {
	// Bank is the question bank location.
	Bank BankConfig `mapstructure:"bank"`

	// XP is the reward policy.
	XP XPConfig `mapstructure:"xp"`

	// Retry holds the retry-test gates.
	Retry RetryConfig `mapstructure:"retry"`

	// LLM selects and configures the question generation provider.
	LLM LLMConfig `mapstructure:"llm"`
}

// BankConfig locates question bank files.
type BankConfig struct {
	// Dir is the directory holding .txt bank files. Empty means the
	// default data directory.
	Dir string `mapstructure:"dir"`
}

// XPConfig is the configurable reward policy.
type XPConfig struct {
	PerCorrect   int `mapstructure:"per_correct"`
	PerfectBonus int `mapstructure:"perfect_bonus"`
}

// RetryConfig holds the retry-test unlock thresholds.
type RetryConfig struct {
	MinTests         int `mapstructure:"min_tests"`
	MinWrongAnswers  int `mapstructure:"min_wrong_answers"`
	CategoryMinTests int `mapstructure:"category_min_tests"`
	MaxSize          int `mapstructure:"max_size"`
}

// LLMConfig selects the generation provider. API keys come only from
// the environment, never the config file.
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

// RewardPolicy converts the XP section to the progression policy.
func (c *Config) RewardPolicy() progression.RewardPolicy {
	return progression.RewardPolicy{
		XPPerCorrect: c.XP.PerCorrect,
		PerfectBonus: c.XP.PerfectBonus,
	}
}

// Gates converts the retry section to the retrytest thresholds.
func (c *Config) Gates() retrytest.Gates {
	return retrytest.Gates{
		MinTests:         c.Retry.MinTests,
		MinWrongAnswers:  c.Retry.MinWrongAnswers,
		CategoryMinTests: c.Retry.CategoryMinTests,
		MaxRetrySize:     c.Retry.MaxSize,
	}
}

// Load reads configuration from the config file and environment.
// A missing config file is fine; defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := defaultConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("QUIZDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bank.dir", "")
	v.SetDefault("xp.per_correct", 10)
	v.SetDefault("xp.perfect_bonus", 20)
	v.SetDefault("retry.min_tests", 10)
	v.SetDefault("retry.min_wrong_answers", 10)
	v.SetDefault("retry.category_min_tests", 100)
	v.SetDefault("retry.max_size", 10)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
}

// defaultConfigDir resolves $XDG_CONFIG_HOME/quizdrill, falling back
// to ~/.config/quizdrill.
func defaultConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizdrill"), nil
}
