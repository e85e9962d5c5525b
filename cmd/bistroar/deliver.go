package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/infra"
	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
	"github.com/TarekElTayeh/bistroAR/internal/service"
)

var (
	deliverPeriod   string
	deliverInDir    string
	deliverManifest string
)

var deliverCmd = &cobra.Command{
	Use:   "deliver",
	Short: "Email the period's invoices and write a delivery manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := model.ParsePeriod(deliverPeriod)
		if err != nil {
			return err
		}
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		inDir := deliverInDir
		if inDir == "" {
			inDir = cfg.InvoiceDir
		}

		var mailer service.Mailer
		if m := infra.NewMailer(cfg); m != nil {
			mailer = m
		} else {
			log.Warn().Msg("SMTP not configured; deliveries will be recorded as SKIPPED")
		}

		svc := service.NewDeliveryService(
			repository.NewInvoiceRepository(db),
			repository.NewClientRepository(db),
			mailer,
			cfg.BusinessName,
		)
		results, err := svc.Deliver(cmd.Context(), period, inDir, deliverManifest)
		if err != nil {
			return err
		}
		log.Info().Int("invoices", len(results)).Str("manifest", deliverManifest).
			Msg("delivery complete")
		return nil
	},
}

func init() {
	deliverCmd.Flags().StringVar(&deliverPeriod, "period", "", "billing period (YYYY-MM)")
	deliverCmd.Flags().StringVar(&deliverInDir, "indir", "", "directory containing invoice PDFs (default INVOICE_DIR)")
	deliverCmd.Flags().StringVar(&deliverManifest, "manifest", "manifest.csv", "output manifest CSV path")
	_ = deliverCmd.MarkFlagRequired("period")
	rootCmd.AddCommand(deliverCmd)
}
