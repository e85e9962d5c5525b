package parser

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
)

// excelEpoch is day zero of spreadsheet serial date/time values.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// headerScanRows bounds the search for the real header row when the export
// carries banner rows above the table.
const headerScanRows = 10

// ParseWorkbook extracts transaction records from the first sheet of a
// monthly transactions XLSX export. Columns are discovered heuristically;
// missing any mandatory field aborts the whole parse with the list of
// missing names.
func ParseWorkbook(path string) ([]model.TransactionRecord, etlerror.Stats, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, etlerror.Stats{}, etlerror.NewInputNotFound(path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, etlerror.Stats{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, etlerror.Stats{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return extractWorkbookRows(rows)
}

// extractWorkbookRows holds the row-iteration logic, split from file I/O so
// column fixtures can exercise it directly.
func extractWorkbookRows(rows [][]string) ([]model.TransactionRecord, etlerror.Stats, error) {
	var stats etlerror.Stats
	if len(rows) == 0 {
		return nil, stats, nil
	}

	headerRow := detectHeaderRow(rows)
	cols := Discover(rows[headerRow], transactionSynonyms)

	var missing []string
	for _, field := range mandatoryFields {
		if _, ok := cols[field]; !ok {
			missing = append(missing, strings.ReplaceAll(field, "_", " "))
		}
	}
	if len(missing) > 0 {
		return nil, stats, etlerror.NewSchemaDetection(missing)
	}

	// No dedicated description column: some exports fold the description into
	// the reference cell as "#<ref>\n<description>".
	descIdx, hasDesc := cols["description"]
	refIdx := cols["reference"]
	if !hasDesc {
		descIdx = refIdx
	}

	var records []model.TransactionRecord
	for _, row := range rows[headerRow+1:] {
		stats.Lines++

		code := strings.TrimSpace(cell(row, cols["client_code"]))
		if code == "" || strings.EqualFold(code, "nan") {
			stats.SkippedLines++
			continue
		}

		date, err := normalizeDate(cell(row, cols["date"]))
		if err != nil {
			stats.BadCells++
			continue
		}

		reference := strings.TrimSpace(cell(row, refIdx))
		description := ""
		if descIdx == refIdx {
			if before, after, found := strings.Cut(reference, "\n"); found {
				reference = before
				description = strings.TrimSpace(after)
			}
			reference = strings.TrimSpace(strings.TrimPrefix(reference, "#"))
		} else {
			reference = strings.TrimPrefix(reference, "#")
			description = strings.TrimSpace(cell(row, descIdx))
		}

		price, err := ParseAmount(cell(row, cols["price"]))
		if err != nil {
			// Unparseable price drops the record; never default to zero.
			stats.BadCells++
			continue
		}

		records = append(records, model.TransactionRecord{
			ClientCode:  code,
			Date:        date,
			Time:        normalizeTime(cell(row, cols["time"])),
			Reference:   reference,
			Employee:    strings.TrimSpace(cell(row, cols["employee"])),
			Description: description,
			Price:       price,
		})
		stats.Records++
	}
	return records, stats, nil
}

// detectHeaderRow scans the leading rows for the one that looks like column
// names: it must resolve both a code-like and a date-like column. Falls back
// to row 0.
func detectHeaderRow(rows [][]string) int {
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		found := Discover(rows[i], transactionSynonyms)
		_, hasCode := found["client_code"]
		_, hasDate := found["date"]
		if hasCode && hasDate {
			return i
		}
	}
	return 0
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/06",
	"1/2/2006",
	"1-2-06",
}

// normalizeDate accepts either a spreadsheet serial number or a date string
// and returns YYYY-MM-DD.
func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty date cell")
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= 0 {
			return "", fmt.Errorf("date serial out of range: %s", raw)
		}
		return excelEpoch.Add(dayFraction(serial)).Format("2006-01-02"), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unparseable date cell %q", raw)
}

// normalizeTime renders a time cell as HH:MM. Fractional day numbers (the
// spreadsheet time-of-day encoding) are resolved against the Excel epoch so
// midnight-aligned fractions reproduce hour:minute exactly; anything else is
// kept as the source string.
func normalizeTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return excelEpoch.Add(dayFraction(serial)).Format("15:04")
	}
	if t, err := time.Parse("15:04:05", raw); err == nil {
		return t.Format("15:04")
	}
	return raw
}

// dayFraction converts a serial day count to a duration, rounded to the
// minute to absorb binary float artifacts in stored fractions.
func dayFraction(serial float64) time.Duration {
	minutes := math.Round(serial * 24 * 60)
	return time.Duration(minutes) * time.Minute
}
