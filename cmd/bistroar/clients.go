package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/repository"
	"github.com/TarekElTayeh/bistroAR/internal/service"
)

var importClientsInput string

var importClientsCmd = &cobra.Command{
	Use:   "import-clients",
	Short: "Import the client list from an XLSX or CSV export",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		svc := service.NewClientService(repository.NewClientRepository(db))
		n, err := svc.ImportFile(cmd.Context(), importClientsInput)
		if err != nil {
			return err
		}
		log.Info().Int("clients", n).Msg("client import complete")
		return nil
	},
}

func init() {
	importClientsCmd.Flags().StringVar(&importClientsInput, "input", "", "client list file (XLSX or CSV)")
	_ = importClientsCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(importClientsCmd)
}
