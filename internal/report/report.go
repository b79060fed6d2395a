// Package report writes per-sample detector state to CSV, matching the
// column layout PanTompkinsCMD emits for its output.csv.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var header = []string{
	"Input", "LPFilter", "HPFilter", "DerivativeF", "SQRFilter", "MVAFilter",
	"RBeat", "RunningThI1", "SignalLevel", "NoiseLevel", "RunningThF",
}

// Row is one sample's worth of detector state to be logged.
type Row struct {
	Input       int16
	LPFilter    int16
	HPFilter    int16
	DerivativeF int16
	SQRFilter   uint16
	MVAFilter   uint16
	RBeat       int32
	RunningThI1 uint16
	SignalLevel uint16
	NoiseLevel  uint16
	RunningThF  int16
}

// Writer emits Rows as CSV, writing the header on the first call.
type Writer struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w in a report Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// Write appends one row, writing the header first if it hasn't been written
// yet.
func (w *Writer) Write(r Row) error {
	if !w.wroteHeader {
		if err := w.w.Write(header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		w.wroteHeader = true
	}
	record := []string{
		strconv.FormatInt(int64(r.Input), 10),
		strconv.FormatInt(int64(r.LPFilter), 10),
		strconv.FormatInt(int64(r.HPFilter), 10),
		strconv.FormatInt(int64(r.DerivativeF), 10),
		strconv.FormatUint(uint64(r.SQRFilter), 10),
		strconv.FormatUint(uint64(r.MVAFilter), 10),
		strconv.FormatInt(int64(r.RBeat), 10),
		strconv.FormatUint(uint64(r.RunningThI1), 10),
		strconv.FormatUint(uint64(r.SignalLevel), 10),
		strconv.FormatUint(uint64(r.NoiseLevel), 10),
		strconv.FormatInt(int64(r.RunningThF), 10),
	}
	if err := w.w.Write(record); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush flushes any buffered CSV output and returns the first error, if
// any, encountered while flushing.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
