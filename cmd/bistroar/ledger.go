package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/parser"
)

var (
	ledgerAccount string
	ledgerCSVOut  string
	ledgerJSONOut string
	ledgerXLSXOut string
)

var ledgerCmd = &cobra.Command{
	Use:   "parse-ledger <journal.txt>",
	Short: "Extract one account's postings from a multi-day ledger journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, stats, err := parser.ParseLedgerJournal(args[0], ledgerAccount)
		if err != nil {
			return err
		}
		logStats(stats)
		if len(entries) == 0 {
			log.Warn().Str("account", ledgerAccount).Msg("no postings found; nothing written")
			return nil
		}
		if err := parser.WriteEntriesCSV(ledgerCSVOut, entries); err != nil {
			return err
		}
		if err := parser.WriteEntriesJSON(ledgerJSONOut, entries); err != nil {
			return err
		}
		if err := parser.WriteEntriesXLSX(ledgerXLSXOut, entries); err != nil {
			return err
		}
		log.Info().Int("entries", len(entries)).Msg("exported ledger postings")
		return nil
	},
}

func init() {
	ledgerCmd.Flags().StringVar(&ledgerAccount, "account", parser.DefaultLedgerAccount, "ledger account to extract")
	ledgerCmd.Flags().StringVar(&ledgerCSVOut, "csv", "output.csv", "output CSV path")
	ledgerCmd.Flags().StringVar(&ledgerJSONOut, "json", "output.json", "output JSON path")
	ledgerCmd.Flags().StringVar(&ledgerXLSXOut, "xlsx", "output.xlsx", "output XLSX path")
	rootCmd.AddCommand(ledgerCmd)
}
