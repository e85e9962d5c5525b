// Package etlerror defines the run-level error taxonomy shared by the parsers
// and services. Only two conditions abort a run: a missing input file and a
// failed column-schema detection. Everything line- or cell-shaped is recovered
// by skipping and surfaces through Stats counters instead.
package etlerror

import (
	"fmt"
	"strings"
)

// InputNotFoundError reports a missing input document or report. Fatal.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func NewInputNotFound(path string) *InputNotFoundError {
	return &InputNotFoundError{Path: path}
}

// SchemaDetectionError reports that one or more mandatory logical columns
// could not be located in a spreadsheet-like input. Fatal; a partial record
// schema must never proceed silently.
type SchemaDetectionError struct {
	Missing []string
}

func (e *SchemaDetectionError) Error() string {
	return "missing expected columns: " + strings.Join(e.Missing, ", ")
}

func NewSchemaDetection(missing []string) *SchemaDetectionError {
	return &SchemaDetectionError{Missing: missing}
}

// Stats counts what one parse pass saw and what it had to skip, so callers
// can report best-effort losses without treating them as failures.
type Stats struct {
	Lines        int // physical lines / rows examined
	Records      int // records emitted
	SkippedLines int // unrecognized lines (page furniture, totals, blanks)
	OrphanLines  int // detail lines seen before any header
	BadCells     int // rows dropped for unparseable price or date cells
}

func (s Stats) Add(o Stats) Stats {
	return Stats{
		Lines:        s.Lines + o.Lines,
		Records:      s.Records + o.Records,
		SkippedLines: s.SkippedLines + o.SkippedLines,
		OrphanLines:  s.OrphanLines + o.OrphanLines,
		BadCells:     s.BadCells + o.BadCells,
	}
}
