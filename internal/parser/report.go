package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
)

// ReadTabular loads a CSV or XLSX file into raw rows, chosen by extension.
// XLSX reads use raw cell values so serials stay numeric.
func ReadTabular(path string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, etlerror.NewInputNotFound(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls", ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()
		return f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()
		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		return r.ReadAll()
	}
}

// LoadMonthlyReport reads the externally produced monthly balance report into
// a client code → expected balance mapping. A client appearing on several
// rows has its balances summed. Rows whose balance cell does not parse are
// skipped (zero contribution); dirty report rows are tolerated, missing
// columns are not.
func LoadMonthlyReport(path string) (map[string]decimal.Decimal, error) {
	rows, err := ReadTabular(path)
	if err != nil {
		return nil, err
	}
	return loadReportRows(rows)
}

func loadReportRows(rows [][]string) (map[string]decimal.Decimal, error) {
	headerRow := 0
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		cols := NormalizeColumns(rows[i])
		if findReportColumn(cols, isCodeColumn) >= 0 && findReportColumn(cols, isBalanceColumn) >= 0 {
			headerRow = i
			break
		}
	}
	if len(rows) == 0 {
		return nil, etlerror.NewSchemaDetection([]string{"code", "balance"})
	}

	cols := NormalizeColumns(rows[headerRow])
	codeIdx := findReportColumn(cols, isCodeColumn)
	balanceIdx := findReportColumn(cols, isBalanceColumn)

	var missing []string
	if codeIdx < 0 {
		missing = append(missing, "code")
	}
	if balanceIdx < 0 {
		missing = append(missing, "balance")
	}
	if len(missing) > 0 {
		return nil, etlerror.NewSchemaDetection(missing)
	}

	report := make(map[string]decimal.Decimal)
	for _, row := range rows[headerRow+1:] {
		code := strings.TrimSpace(cell(row, codeIdx))
		if code == "" || strings.EqualFold(code, "nan") {
			continue
		}
		balance, err := ParseAmount(cell(row, balanceIdx))
		if err != nil {
			continue
		}
		report[code] = report[code].Add(balance)
	}
	return report, nil
}

func findReportColumn(cols []string, match func(string) bool) int {
	for i, col := range cols {
		if match(col) {
			return i
		}
	}
	return -1
}

func isCodeColumn(col string) bool {
	return strings.Contains(col, "code") || strings.Contains(col, "client")
}

func isBalanceColumn(col string) bool {
	return strings.HasPrefix(col, "balance") ||
		strings.HasPrefix(col, "owed") ||
		strings.HasPrefix(col, "total") ||
		strings.Contains(col, "amount")
}
