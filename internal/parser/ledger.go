package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
)

// DefaultLedgerAccount is the accounts-receivable account the ledger journal
// export is filtered on.
const DefaultLedgerAccount = "1105"

var ledgerDatePattern = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{2})$`)

// ParseLedgerJournal extracts postings for one account from a multi-day
// journal entry TXT. Lines are comma-separated; a lone MM-DD-YY token sets
// the current date for the rows that follow, and rows whose first field
// equals the target account contribute one entry each. Amounts that fail to
// parse are warned about and skipped.
func ParseLedgerJournal(path, account string) ([]model.JournalEntry, etlerror.Stats, error) {
	if account == "" {
		account = DefaultLedgerAccount
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, etlerror.Stats{}, etlerror.NewInputNotFound(path)
		}
		return nil, etlerror.Stats{}, fmt.Errorf("open ledger journal: %w", err)
	}
	defer f.Close()

	entries, stats := extractLedgerEntries(f, account)
	return entries, stats, nil
}

func extractLedgerEntries(r io.Reader, account string) ([]model.JournalEntry, etlerror.Stats) {
	var (
		entries     []model.JournalEntry
		stats       etlerror.Stats
		currentDate string
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		stats.Lines++

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		if m := ledgerDatePattern.FindStringSubmatch(parts[0]); m != nil {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			currentDate = fmt.Sprintf("20%s-%02d-%02d", m[3], month, day)
			continue
		}

		if currentDate == "" || len(parts) < 2 || parts[0] != account {
			stats.SkippedLines++
			continue
		}

		amount, err := ParseAmount(parts[1])
		if err != nil {
			log.Warn().Str("date", currentDate).Str("raw", parts[1]).
				Msg("invalid ledger amount, skipping line")
			stats.BadCells++
			continue
		}
		entries = append(entries, model.JournalEntry{
			Date:    currentDate,
			Account: account,
			Amount:  amount,
		})
		stats.Records++
	}
	return entries, stats
}
