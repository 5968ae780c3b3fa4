package nucsi

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFastq(t *testing.T, name string, seqs ...string) string {
	t.Helper()

	var b strings.Builder
	for i, seq := range seqs {
		b.WriteString("@read")
		b.WriteString(string(rune('1' + i)))
		b.WriteString("\n")
		b.WriteString(seq)
		b.WriteString("\n+\n")
		b.WriteString(strings.Repeat("I", len(seq)))
		b.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanner_ProcessFile(t *testing.T) {
	s := newTestScanner(t, 40)

	path := writeFastq(t, "reads.fastq",
		// both motifs exact, extraction finds GTT
		"AAT"+testUpstream+"GTT"+testDownstream+"CAA",
		// downstream only, nothing extracted
		"AATGGA"+testDownstream+"CAA",
		// upstream carries two mismatches: fuzzy extraction still
		// finds GTT but the exact-only tallies do not count it
		"AAT"+"TTGGTAGC"+"GTT"+testDownstream+"CAA",
	)

	sequences, stats, err := s.ProcessFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"GTT", "GTT"}; !reflect.DeepEqual(sequences, want) {
		t.Errorf("Scanner.ProcessFile() sequences = %v, want %v", sequences, want)
	}

	wantStats := FileStats{
		TotalReads:     3,
		WithUpstream:   1,
		WithDownstream: 3,
		WithBoth:       1,
	}
	if !reflect.DeepEqual(stats, wantStats) {
		t.Errorf("Scanner.ProcessFile() stats = %+v, want %+v", stats, wantStats)
	}
}

func TestScanner_ProcessFile_empty(t *testing.T) {
	s := newTestScanner(t, 40)

	path := writeFastq(t, "empty.fastq")

	sequences, stats, err := s.ProcessFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sequences) != 0 {
		t.Errorf("Scanner.ProcessFile() sequences = %v, want none", sequences)
	}
	if !reflect.DeepEqual(stats, FileStats{}) {
		t.Errorf("Scanner.ProcessFile() stats = %+v, want zeroes", stats)
	}
}

// a malformed record fails the whole file rather than being skipped
func TestScanner_ProcessFile_malformed(t *testing.T) {
	s := newTestScanner(t, 40)

	path := filepath.Join(t.TempDir(), "bad.fastq")
	records := "@read1\nACGT\n+\nIIII\nread2-missing-header\nACGT\n+\nIIII\n"
	if err := os.WriteFile(path, []byte(records), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := s.ProcessFile(path); err == nil {
		t.Error("Scanner.ProcessFile() did not fail on a malformed record")
	}
}
