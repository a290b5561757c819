package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is built once at startup and
// handed to the components that need it; nothing mutates it afterwards.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Outbound mail credentials. The relay host and port are fixed in the
	// notification package; only the account is configurable.
	MailUser string `mapstructure:"MAIL_USER"`
	MailPass string `mapstructure:"MAIL_PASS"`
}

// Load initializes Viper to read config values from env, file, or defaults.
func Load() Config {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "postgres://localhost:5432/deliveries")
	viper.SetDefault("MAIL_USER", "")
	viper.SetDefault("MAIL_PASS", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// IsProduction checks if the environment is production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
