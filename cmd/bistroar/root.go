package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/TarekElTayeh/bistroAR/internal/config"
	"github.com/TarekElTayeh/bistroAR/internal/infra"
)

var rootCmd = &cobra.Command{
	Use:   "bistroar",
	Short: "Accounts-receivable automation for Veloce POS exports",
	Long: `bistroar parses Veloce transaction journals and spreadsheet reports,
aggregates line items into billable visits, generates and delivers monthly
client invoices, and reconciles computed totals against the monthly report.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// openDB loads config and opens the database; shared by every DB-backed
// command. Opening bootstraps the schema on a fresh file.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
