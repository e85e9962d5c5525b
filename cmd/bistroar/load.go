package main

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/parser"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
	"github.com/TarekElTayeh/bistroAR/internal/service"
)

var (
	loadTxns   string
	loadPeriod string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Aggregate transaction records into visits and store them",
	Long: `load groups transaction records by (client, date, time, reference) into
visits and writes them in one transaction. Re-running a period replaces the
rows the previous run wrote.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := model.ParsePeriod(loadPeriod)
		if err != nil {
			return err
		}

		var (
			records []model.TransactionRecord
			stats   etlerror.Stats
		)
		switch strings.ToLower(filepath.Ext(loadTxns)) {
		case ".csv":
			records, stats, err = parser.ReadRecordsCSV(loadTxns)
		default:
			records, stats, err = parseInput(loadTxns)
		}
		if err != nil {
			return err
		}
		logStats(stats)

		_, db, err := openDB()
		if err != nil {
			return err
		}
		loader := service.NewLoaderService(repository.NewVisitRepository(db))
		summary, err := loader.Load(cmd.Context(), records, period)
		if err != nil {
			return err
		}
		if summary.Visits == 0 {
			log.Warn().Str("period", period.String()).Msg("no records extracted; nothing persisted")
			return nil
		}
		log.Info().Str("period", period.String()).
			Int("visits", summary.Visits).Int("items", summary.Items).
			Msg("load complete")
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadTxns, "txns", "", "transactions file (CSV, journal TXT or XLSX)")
	loadCmd.Flags().StringVar(&loadPeriod, "period", "", "billing period (YYYY-MM)")
	_ = loadCmd.MarkFlagRequired("txns")
	_ = loadCmd.MarkFlagRequired("period")
	rootCmd.AddCommand(loadCmd)
}
