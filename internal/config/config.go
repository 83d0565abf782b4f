package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tool-level defaults that command line flags may override.
type Config struct {
	GcovCommand string   `mapstructure:"gcov_command"`
	Timeout     int      `mapstructure:"timeout"`
	Filters     []string `mapstructure:"filters"`
}

// Load reads covcalc.yaml into a Config. A missing config file is not an
// error; built-in defaults apply so the tool works without one.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("covcalc")
	v.SetConfigType("yaml")
	// 支持多路径查找
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	v.AddConfigPath("../configs") // 适配go test包内运行

	v.SetDefault("gcov_command", "gcov")
	v.SetDefault("timeout", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	return cfg, nil
}
