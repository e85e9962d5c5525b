package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Storage
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	InvoiceDir   string `mapstructure:"INVOICE_DIR"`

	// SMTP; delivery is skipped entirely when SMTP_HOST is unset
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPSender   string `mapstructure:"SMTP_SENDER"`

	// Business
	BusinessName       string `mapstructure:"BUSINESS_NAME"`
	ReconcileTolerance string `mapstructure:"RECONCILE_TOLERANCE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("DATABASE_PATH", "bistro54.db")
	viper.SetDefault("INVOICE_DIR", "out/invoices")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("BUSINESS_NAME", "Bistro54")
	viper.SetDefault("RECONCILE_TOLERANCE", "0.01")

	// Optional .env file for local development; does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
