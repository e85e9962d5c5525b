package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
)

// ParseJournal extracts transaction records from a Veloce journal export
// (PDF-extracted text, one logical line per row). Zero extractable records is
// not an error; the caller decides whether an empty result is worth flagging.
func ParseJournal(path string) ([]model.TransactionRecord, etlerror.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, etlerror.Stats{}, etlerror.NewInputNotFound(path)
		}
		return nil, etlerror.Stats{}, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	records, stats := ExtractRecords(f)
	return records, stats, nil
}

// ExtractRecords drives the line classifier over the whole document in source
// order, threading the current header as explicit state. Records come out in
// the exact order their detail lines were encountered; never reordered,
// never deduplicated. Detail lines before the first header are dropped and
// counted as orphans.
func ExtractRecords(r io.Reader) ([]model.TransactionRecord, etlerror.Stats) {
	var (
		records []model.TransactionRecord
		stats   etlerror.Stats
		header  *HeaderContext
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		stats.Lines++
		out := ClassifyLine(sc.Text())
		switch out.Kind {
		case LineHeader:
			h := out.Header
			header = &h
		case LineDetail:
			if header == nil {
				stats.OrphanLines++
				continue
			}
			records = append(records, model.TransactionRecord{
				ClientCode:  header.ClientCode,
				Date:        header.Date,
				Time:        header.Time,
				Reference:   header.Reference,
				Employee:    header.Employee,
				Description: out.Description,
				Price:       out.Price,
			})
			stats.Records++
		default:
			stats.SkippedLines++
		}
	}
	return records, stats
}
