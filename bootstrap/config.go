package bootstrap

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	AIDifficulty     string `mapstructure:"AI_DIFFICULTY"`
	SearchBudgetMS   int    `mapstructure:"SEARCH_BUDGET_MS"`
	Determinizations int    `mapstructure:"DETERMINIZATIONS"`
}

// Setup loads configuration from the given env file, overridable by real
// environment variables. A missing file falls back to defaults.
func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AI_DIFFICULTY", "basic")
	viper.SetDefault("SEARCH_BUDGET_MS", 1500)
	viper.SetDefault("DETERMINIZATIONS", 3)

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
