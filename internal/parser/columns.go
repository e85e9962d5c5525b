package parser

import "strings"

// Logical fields and the column-name keywords that identify them, in match
// priority order. An exact header is never required; substring matching
// against normalized names absorbs the export's naming drift.
var transactionSynonyms = map[string][]string{
	"client_code": {"client_code", "code", "client"},
	"date":        {"date", "transaction_date"},
	"time":        {"time", "transaction_time"},
	"reference":   {"reference", "ref", "#"},
	"employee":    {"employee", "server"},
	"description": {"description", "item", "detail"},
	"price":       {"price", "amount", "total"},
}

// mandatoryFields are the fields a transaction spreadsheet must resolve;
// description alone may be folded into the reference column.
var mandatoryFields = []string{"client_code", "date", "time", "reference", "employee", "price"}

// NormalizeColumn lowercases, trims and underscores a header cell so keyword
// matching is case/space insensitive.
func NormalizeColumn(c string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c)), " ", "_")
}

func NormalizeColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = NormalizeColumn(c)
	}
	return out
}

// Discover maps logical fields to column indexes by keyword substring match.
// For each field the keywords are tried in order and the first column that
// contains the keyword wins. Fields with no matching column are absent from
// the result. Pure; callers handle header-row scanning separately.
func Discover(columns []string, synonyms map[string][]string) map[string]int {
	normalized := NormalizeColumns(columns)
	found := make(map[string]int, len(synonyms))
	for field, keywords := range synonyms {
		for _, kw := range keywords {
			idx := -1
			for i, col := range normalized {
				if strings.Contains(col, kw) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				found[field] = idx
				break
			}
		}
	}
	return found
}
