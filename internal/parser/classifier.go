package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Header line shape in the Veloce journal export, anchored at line start:
// client code, M/D/YY date, H:MM time, optional-# reference, employee name(s).
var headerPattern = regexp.MustCompile(
	`^(\d+)\s+(\d{1,2})/(\d{1,2})/(\d{2})\s+(\d{1,2}:\d{2})\s+#?(\d+)\s+(.+)$`)

// HeaderContext is the active visit header carried across detail lines. The
// extractor threads it explicitly: nil means no header seen yet, and every
// header line overwrites the previous context: checkpoints, not merges.
type HeaderContext struct {
	ClientCode string
	Date       string // normalized to YYYY-MM-DD
	Time       string // HH:MM
	Reference  string
	Employee   string
}

type LineKind int

const (
	LineUnrecognized LineKind = iota
	LineHeader
	LineDetail
)

// LineOutcome is the classification of a single raw line. Header is set for
// LineHeader; Description and Price for LineDetail.
type LineOutcome struct {
	Kind        LineKind
	Header      HeaderContext
	Description string
	Price       decimal.Decimal
}

// ClassifyLine decides whether a journal line is a visit header, a priced
// detail line, or neither. Lines whose trailing token does not parse as an
// amount are Unrecognized; page furniture and section totals look exactly
// like that, so they are skipped rather than reported.
func ClassifyLine(line string) LineOutcome {
	line = strings.TrimSpace(line)
	if line == "" {
		return LineOutcome{Kind: LineUnrecognized}
	}

	if m := headerPattern.FindStringSubmatch(line); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return LineOutcome{
			Kind: LineHeader,
			Header: HeaderContext{
				ClientCode: m[1],
				Date:       fmt.Sprintf("20%s-%02d-%02d", m[4], month, day),
				Time:       m[5],
				Reference:  m[6],
				Employee:   strings.TrimSpace(m[7]),
			},
		}
	}

	// Detail: split on the LAST whitespace boundary; the trailing token must
	// be a price.
	idx := strings.LastIndex(line, " ")
	if idx < 0 {
		return LineOutcome{Kind: LineUnrecognized}
	}
	price, err := ParseAmount(line[idx+1:])
	if err != nil {
		return LineOutcome{Kind: LineUnrecognized}
	}
	return LineOutcome{
		Kind:        LineDetail,
		Description: strings.TrimSpace(line[:idx]),
		Price:       price,
	}
}

// ParseAmount parses a money token after stripping "$" and thousands commas.
// decimal.NewFromString rejects NaN/Inf, which keeps the finite-price
// invariant without an extra check.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}
