package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/infra"
)

var (
	cleanupCSV  []string
	cleanupJSON []string
	cleanupXLSX []string
	cleanupPDF  []string
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete generated output files",
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		paths = append(paths, cleanupCSV...)
		paths = append(paths, cleanupJSON...)
		paths = append(paths, cleanupXLSX...)
		paths = append(paths, cleanupPDF...)
		if len(paths) == 0 {
			log.Info().Msg("no files specified for cleanup")
			return nil
		}
		removed := infra.RemoveOutputs(paths)
		log.Info().Int("removed", len(removed)).Msg("cleanup complete")
		return nil
	},
}

func init() {
	cleanupCmd.Flags().StringSliceVar(&cleanupCSV, "csv", nil, "CSV files to remove")
	cleanupCmd.Flags().StringSliceVar(&cleanupJSON, "json", nil, "JSON files to remove")
	cleanupCmd.Flags().StringSliceVar(&cleanupXLSX, "xlsx", nil, "XLSX files to remove")
	cleanupCmd.Flags().StringSliceVar(&cleanupPDF, "pdf", nil, "PDF files to remove")
	rootCmd.AddCommand(cleanupCmd)
}
