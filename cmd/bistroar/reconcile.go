package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
	"github.com/TarekElTayeh/bistroAR/internal/service"
)

var (
	reconcileMonthly string
	reconcilePeriod  string
	reconcileOut     string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare stored visit totals against the monthly report",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := model.ParsePeriod(reconcilePeriod)
		if err != nil {
			return err
		}
		cfg, db, err := openDB()
		if err != nil {
			return err
		}

		tolerance, err := decimal.NewFromString(cfg.ReconcileTolerance)
		if err != nil {
			return fmt.Errorf("invalid RECONCILE_TOLERANCE %q: %w", cfg.ReconcileTolerance, err)
		}
		differ := service.NewReconcileService(repository.NewVisitRepository(db), tolerance)
		discrepancies, err := differ.Reconcile(cmd.Context(), reconcileMonthly, period)
		if err != nil {
			return err
		}

		if len(discrepancies) == 0 {
			log.Info().Str("period", period.String()).Msg("no reconciliation issues found")
			return nil
		}
		if err := writeDiscrepanciesCSV(reconcileOut, discrepancies); err != nil {
			return err
		}
		log.Warn().Int("issues", len(discrepancies)).Str("out", reconcileOut).
			Msg("reconciliation issues found")
		return nil
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileMonthly, "monthly", "", "monthly report file (CSV or XLSX)")
	reconcileCmd.Flags().StringVar(&reconcilePeriod, "period", "", "billing period (YYYY-MM)")
	reconcileCmd.Flags().StringVar(&reconcileOut, "out", "recon_issues.csv", "output CSV for discrepancies")
	_ = reconcileCmd.MarkFlagRequired("monthly")
	_ = reconcileCmd.MarkFlagRequired("period")
	rootCmd.AddCommand(reconcileCmd)
}

func writeDiscrepanciesCSV(path string, discrepancies []model.Discrepancy) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create discrepancy csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"client_code", "expected_balance", "actual_total", "difference"}); err != nil {
		return err
	}
	for _, d := range discrepancies {
		row := []string{
			d.ClientCode,
			d.ExpectedBalance.StringFixed(2),
			d.ActualTotal.StringFixed(2),
			d.Difference.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
