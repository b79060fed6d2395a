package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Write(Row{Input: 1}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write(Row{Input: 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 rows), got %d: %q", len(lines), buf.String())
	}
	want := "Input,LPFilter,HPFilter,DerivativeF,SQRFilter,MVAFilter,RBeat,RunningThI1,SignalLevel,NoiseLevel,RunningThF"
	if lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
}

func TestWriteRowFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	row := Row{
		Input: -12, LPFilter: 34, HPFilter: -56, DerivativeF: 78, SQRFilter: 9000,
		MVAFilter: 4096, RBeat: 7, RunningThI1: 200, SignalLevel: 300, NoiseLevel: 50, RunningThF: -20,
	}
	if err := w.Write(row); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	want := "-12,34,-56,78,9000,4096,7,200,300,50,-20"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}
