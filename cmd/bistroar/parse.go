package main

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/parser"
)

var (
	parseCSVOut  string
	parseJSONOut string
)

var parseCmd = &cobra.Command{
	Use:   "parse <journal.txt | transactions.xlsx>",
	Short: "Extract transaction records from a journal or spreadsheet export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, stats, err := parseInput(args[0])
		if err != nil {
			return err
		}
		logStats(stats)
		if len(records) == 0 {
			log.Warn().Msg("no records extracted; nothing written")
			return nil
		}
		if err := parser.WriteRecordsCSV(parseCSVOut, records); err != nil {
			return err
		}
		if err := parser.WriteRecordsJSON(parseJSONOut, records); err != nil {
			return err
		}
		log.Info().Int("records", len(records)).
			Str("csv", parseCSVOut).Str("json", parseJSONOut).
			Msg("exported records")
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseCSVOut, "csv", "transactions.csv", "output CSV path")
	parseCmd.Flags().StringVar(&parseJSONOut, "json", "transactions.json", "output JSON path")
	rootCmd.AddCommand(parseCmd)
}

// parseInput picks the parser variant by extension: spreadsheet exports go
// through column discovery, everything else is treated as a text journal.
func parseInput(path string) ([]model.TransactionRecord, etlerror.Stats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls", ".xlsx":
		return parser.ParseWorkbook(path)
	default:
		return parser.ParseJournal(path)
	}
}

func logStats(stats etlerror.Stats) {
	log.Info().
		Int("lines", stats.Lines).
		Int("records", stats.Records).
		Int("skipped", stats.SkippedLines).
		Int("orphans", stats.OrphanLines).
		Int("bad_cells", stats.BadCells).
		Msg("parse finished")
}
