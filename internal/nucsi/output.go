package nucsi

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// writeFasta writes each sequence as a FASTA record labeled by its
// index in the pool: sequence_000000, sequence_000001, ...
func writeFasta(w io.Writer, sequences []string) error {
	bw := bufio.NewWriter(w)
	for i, seq := range sequences {
		fmt.Fprintf(bw, ">sequence_%06d\n%s\n", i, seq)
	}
	return bw.Flush()
}

// writeFastaFile writes the labeled sequences to a new file at path.
func writeFastaFile(path string, sequences []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeFasta(f, sequences); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// readFasta returns the sequences of every record in a FASTA file,
// joining wrapped sequence lines.
func readFasta(path string) ([]string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seqs []string
	var current strings.Builder
	inRecord := false
	for _, line := range strings.Split(string(dat), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, ">") {
			if inRecord {
				seqs = append(seqs, current.String())
				current.Reset()
			}
			inRecord = true
			continue
		}
		if inRecord {
			current.WriteString(strings.TrimSpace(line))
		}
	}
	if inRecord {
		seqs = append(seqs, current.String())
	}

	if len(seqs) == 0 {
		return nil, fmt.Errorf("no FASTA records in %s", path)
	}
	return seqs, nil
}

// writeSummary writes the human-readable run report: what was searched
// for, how much was found, and the consensus when an alignment was
// produced.
func writeSummary(path string, s *Scanner, sequences []string, fileCount int, consensusSeq string) error {
	minLen, maxLen, total := len(sequences[0]), len(sequences[0]), 0
	for _, seq := range sequences {
		if len(seq) < minLen {
			minLen = len(seq)
		}
		if len(seq) > maxLen {
			maxLen = len(seq)
		}
		total += len(seq)
	}
	mean := float64(total) / float64(len(sequences))

	b := &bytes.Buffer{}
	fmt.Fprintf(b, "Sequence Scanning Summary\n")
	fmt.Fprintf(b, "========================\n")
	fmt.Fprintf(b, "Upstream motif: %s\n", s.Upstream)
	fmt.Fprintf(b, "Downstream motif: %s\n", s.Downstream)
	fmt.Fprintf(b, "Maximum sequence length: %d\n", s.MaxLength)
	fmt.Fprintf(b, "Total sequences found: %d\n", len(sequences))
	fmt.Fprintf(b, "Files processed: %d\n", fileCount)
	fmt.Fprintf(b, "Average sequence length: %.1f\n", mean)
	fmt.Fprintf(b, "Sequence length range: %d-%d\n", minLen, maxLen)
	if consensusSeq != "" {
		fmt.Fprintf(b, "Consensus sequence: %s\n", consensusSeq)
	}

	return os.WriteFile(path, b.Bytes(), 0644)
}
