package parser

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
)

var recordFields = []string{"client_code", "date", "time", "reference", "employee", "description", "price"}

// WriteRecordsCSV writes records in the canonical column order consumed by
// the load step.
func WriteRecordsCSV(path string, records []model.TransactionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordFields); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.ClientCode, r.Date, r.Time, r.Reference, r.Employee, r.Description, r.Price.String()}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteRecordsJSON(path string, records []model.TransactionRecord) error {
	return writeJSON(path, records)
}

// ReadRecordsCSV loads a canonical transactions CSV back into records. Rows
// with unparseable prices are dropped and counted, matching the parse-time
// invariant.
func ReadRecordsCSV(path string) ([]model.TransactionRecord, etlerror.Stats, error) {
	var stats etlerror.Stats

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stats, etlerror.NewInputNotFound(path)
		}
		return nil, stats, fmt.Errorf("open transactions csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, stats, fmt.Errorf("read transactions csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, stats, nil
	}

	cols := Discover(rows[0], transactionSynonyms)
	var missing []string
	for _, field := range mandatoryFields {
		if _, ok := cols[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, stats, etlerror.NewSchemaDetection(missing)
	}
	descIdx, hasDesc := cols["description"]
	if !hasDesc {
		descIdx = cols["reference"]
	}

	var records []model.TransactionRecord
	for _, row := range rows[1:] {
		stats.Lines++
		price, err := ParseAmount(cell(row, cols["price"]))
		if err != nil {
			stats.BadCells++
			continue
		}
		records = append(records, model.TransactionRecord{
			ClientCode:  cell(row, cols["client_code"]),
			Date:        cell(row, cols["date"]),
			Time:        cell(row, cols["time"]),
			Reference:   cell(row, cols["reference"]),
			Employee:    cell(row, cols["employee"]),
			Description: cell(row, descIdx),
			Price:       price,
		})
		stats.Records++
	}
	return records, stats, nil
}

var entryFields = []string{"date", "account", "amount"}

func WriteEntriesCSV(path string, entries []model.JournalEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(entryFields); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Date, e.Account, e.Amount.String()}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteEntriesJSON(path string, entries []model.JournalEntry) error {
	return writeJSON(path, entries)
}

// WriteEntriesXLSX exports ledger entries as a one-sheet workbook.
func WriteEntriesXLSX(path string, entries []model.JournalEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(entryFields))
	for i, h := range entryFields {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, e := range entries {
		amount, _ := e.Amount.Float64()
		row := []interface{}{e.Date, e.Account, amount}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
