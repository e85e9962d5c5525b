package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
	"github.com/TarekElTayeh/bistroAR/internal/service"
)

var (
	invoicesPeriod string
	invoicesOut    string
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Generate one invoice PDF per client with visits in the period",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := model.ParsePeriod(invoicesPeriod)
		if err != nil {
			return err
		}
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		outDir := invoicesOut
		if outDir == "" {
			outDir = cfg.InvoiceDir
		}

		svc := service.NewInvoiceService(
			repository.NewVisitRepository(db),
			repository.NewClientRepository(db),
			repository.NewInvoiceRepository(db),
			cfg.BusinessName,
		)
		results, err := svc.Generate(cmd.Context(), period, outDir)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			log.Warn().Str("period", period.String()).Msg("no visits in period; no invoices generated")
			return nil
		}
		log.Info().Int("invoices", len(results)).Str("dir", outDir).Msg("invoice generation complete")
		return nil
	},
}

func init() {
	invoicesCmd.Flags().StringVar(&invoicesPeriod, "period", "", "billing period (YYYY-MM)")
	invoicesCmd.Flags().StringVar(&invoicesOut, "out", "", "output directory (default INVOICE_DIR)")
	_ = invoicesCmd.MarkFlagRequired("period")
	rootCmd.AddCommand(invoicesCmd)
}
