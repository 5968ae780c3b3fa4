package nucsi

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

var bases = [4]byte{'A', 'C', 'G', 'T'}

// baseFrequencies computes the per-position frequency of A, C, G and T
// across equal-length aligned records. Gaps and ambiguity codes are
// ignored, so each column's frequencies are relative to its called
// bases. All records must share one alignment length.
func baseFrequencies(aligned []string) ([][4]float64, error) {
	if len(aligned) == 0 {
		return nil, fmt.Errorf("no aligned records")
	}

	width := len(aligned[0])
	for i, record := range aligned {
		if len(record) != width {
			return nil, fmt.Errorf("aligned record %d is %d long, want %d", i, len(record), width)
		}
	}

	counts := make([][4]float64, width)
	for _, record := range aligned {
		record = strings.ToUpper(record)
		for i := 0; i < width; i++ {
			switch record[i] {
			case 'A':
				counts[i][0]++
			case 'C':
				counts[i][1]++
			case 'G':
				counts[i][2]++
			case 'T':
				counts[i][3]++
			}
		}
	}

	for i := range counts {
		total := counts[i][0] + counts[i][1] + counts[i][2] + counts[i][3]
		if total == 0 {
			continue // all-gap column
		}
		for b := range counts[i] {
			counts[i][b] /= total
		}
	}

	return counts, nil
}

// consensus returns the majority base per alignment column, or N for a
// column without any called bases.
func consensus(freqs [][4]float64) string {
	var b strings.Builder
	for _, column := range freqs {
		best, bestFreq := byte('N'), 0.0
		for i, freq := range column {
			if freq > bestFreq {
				best, bestFreq = bases[i], freq
			}
		}
		b.WriteByte(best)
	}
	return b.String()
}

// writeFrequencyMatrix saves the positional base-frequency matrix as a
// TSV with one row per alignment column.
func writeFrequencyMatrix(path string, freqs [][4]float64) error {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "pos\tA\tC\tG\tT\n")
	for i, column := range freqs {
		fmt.Fprintf(b, "%d\t%.4f\t%.4f\t%.4f\t%.4f\n", i, column[0], column[1], column[2], column[3])
	}

	return os.WriteFile(path, b.Bytes(), 0644)
}
