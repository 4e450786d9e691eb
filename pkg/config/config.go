package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	ETA      ETAConfig      `mapstructure:"eta"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type CheckoutConfig struct {
	// ProcessingDelay is the simulated payment processing time.
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
}

type ETAConfig struct {
	BaseMinutes     int           `mapstructure:"base_minutes"`
	PerOrderMinutes int           `mapstructure:"per_order_minutes"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("checkout.processing_delay", 3*time.Second)
	v.SetDefault("eta.base_minutes", 20)
	v.SetDefault("eta.per_order_minutes", 5)
	v.SetDefault("eta.refresh_interval", time.Minute)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("log.level", "info")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
