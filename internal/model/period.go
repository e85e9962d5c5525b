package model

import (
	"fmt"
	"strings"
	"time"
)

// Period is one billing calendar month, parsed from "YYYY-MM". Invoices,
// loads and reconciliation all filter by it.
type Period struct {
	Year  int
	Month time.Month
}

func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q (want YYYY-MM): %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Start returns the first day of the period as YYYY-MM-DD.
func (p Period) Start() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// End returns the last day of the period as YYYY-MM-DD.
func (p Period) End() string {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Contains reports whether a YYYY-MM-DD date falls inside the period.
func (p Period) Contains(date string) bool {
	return strings.HasPrefix(date, p.String()+"-")
}

// Display renders the period the way invoices print it,
// e.g. "July 1st to July 31st 2025".
func (p Period) Display() string {
	end := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%s %s to %s %s %d",
		p.Month.String(), ordinal(1),
		p.Month.String(), ordinal(end.Day()), p.Year)
}

func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
