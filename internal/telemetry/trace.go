// Package telemetry records a per-frame movement trace as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FrameRecord is one row of the trace.
type FrameRecord struct {
	Frame   int64   `csv:"frame"`
	DT      float64 `csv:"dt"`
	PlayerX float64 `csv:"player_x"`
	PlayerY float64 `csv:"player_y"`
	VelX    float64 `csv:"vel_x"`
	VelY    float64 `csv:"vel_y"`
	Speed   float64 `csv:"speed"`
	Moved   bool    `csv:"moved"`
	Day     bool    `csv:"day"`
	Enemies int     `csv:"enemies_alive"`
}

// Trace appends FrameRecords to a CSV stream. A nil *Trace is a valid
// disabled trace: every method is a no-op.
type Trace struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int64
}

// NewTrace creates the trace file at path. Returns nil if path is empty
// (trace disabled).
func NewTrace(path string) (*Trace, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	t := NewTraceWriter(f)
	t.closer = f
	return t, nil
}

// NewTraceWriter traces to w. The caller owns w.
func NewTraceWriter(w io.Writer) *Trace {
	return &Trace{w: w}
}

// Write appends one record. The first write includes the header.
func (t *Trace) Write(rec FrameRecord) error {
	if t == nil {
		return nil
	}

	records := []FrameRecord{rec}

	if !t.headerWritten {
		if err := gocsv.Marshal(records, t.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		t.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, t.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	t.rows++
	return nil
}

// Rows returns how many records were written.
func (t *Trace) Rows() int64 {
	if t == nil {
		return 0
	}
	return t.rows
}

// Close closes the underlying file, if the trace opened one.
func (t *Trace) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// ReadTrace parses a trace back into records.
func ReadTrace(r io.Reader) ([]FrameRecord, error) {
	var records []FrameRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}
