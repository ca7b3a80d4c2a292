package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration, managed by Viper with YAML files
// and environment variable overrides (prefix BOOKSTORE).
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Seed   SeedConfig   `mapstructure:"seed"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug | release | test
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type AuthConfig struct {
	// APIKey is the shared secret every /api route must present in the
	// x-api-key header. The process refuses to start without one.
	APIKey string `mapstructure:"api_key"`
}

type SeedConfig struct {
	BooksFile      string `mapstructure:"books_file"`
	OrdersFile     string `mapstructure:"orders_file"`
	DeliveriesFile string `mapstructure:"deliveries_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

// Load reads configs/config.yaml (or ./config.yaml) and applies environment
// overrides such as BOOKSTORE_AUTH_API_KEY.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	// Registered empty so the env override is visible to Unmarshal even
	// without a config file.
	v.SetDefault("auth.api_key", "")
	v.SetDefault("seed.books_file", "mock_data/inventory.json")
	v.SetDefault("seed.orders_file", "mock_data/sales.json")
	v.SetDefault("seed.deliveries_file", "mock_data/deliveries.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine (defaults + env cover everything);
		// a malformed file is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if cfg.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is not set (config file or BOOKSTORE_AUTH_API_KEY)")
	}

	if cfg.Seed.BooksFile == "" || cfg.Seed.OrdersFile == "" || cfg.Seed.DeliveriesFile == "" {
		return fmt.Errorf("all three seed file paths must be set")
	}

	return nil
}
