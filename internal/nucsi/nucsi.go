// Package nucsi finds candidate nuclease cleavage sites in sequencing
// reads. Each read is scanned for an upstream and a downstream anchor
// motif, exactly and with up to two mismatches, in both orientations;
// the sequences between paired anchors are pooled, aligned with MAFFT
// and summarized into a consensus.
package nucsi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Matt115A/NuCSI/config"
	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
)

// ScanCmd takes a cobra command (with its flags) and runs Scan.
func ScanCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	logger, err := newLogger(conf.LogBase())
	if err != nil {
		log.Fatal(err)
	}

	if err := Scan(conf, logger); err != nil {
		logger.Fatal(err)
	}
}

// Scan extracts candidate cleavage-site sequences from every FASTQ
// file in the reads directory, pools them, aligns the pool with MAFFT
// and writes the consensus outputs. Files are processed one at a time;
// a bad record fails its file and the run.
func Scan(conf *config.Config, logger *log.Logger) error {
	scanner, err := NewScanner(conf.Upstream, conf.Downstream, conf.MaxLength, logger)
	if err != nil {
		return err
	}

	files, err := findReadFiles(conf.ReadsDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("no FASTQ files found", "dir", conf.ReadsDir)
		return nil
	}

	outputDir := conf.OutputDir()
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	logger.Info("scanning",
		"upstream", scanner.Upstream,
		"downstream", scanner.Downstream,
		"max_length", scanner.MaxLength,
		"files", len(files),
	)

	var pool []string
	bar := pb.StartNew(len(files))
	for _, file := range files {
		logger.Info("processing", "file", file)

		sequences, _, err := scanner.ProcessFile(file)
		if err != nil {
			bar.Finish()
			return err
		}
		pool = append(pool, sequences...)

		logger.Info("extracted", "file", filepath.Base(file), "sequences", len(sequences))
		for i, seq := range sequences {
			if i == 3 {
				break
			}
			logger.Debug("sample sequence", "n", i+1, "seq", seq)
		}

		bar.Increment()
	}
	bar.Finish()

	logger.Info("total sequences found", "count", len(pool))
	if len(pool) == 0 {
		logger.Warn("no sequences found matching criteria")
		return nil
	}

	rawPath := filepath.Join(outputDir, "raw_sequences.fasta")
	if err := writeFastaFile(rawPath, pool); err != nil {
		return err
	}
	logger.Info("raw sequences saved", "path", rawPath)

	alignedPath, err := align(pool, outputDir)
	if err != nil {
		return err
	}
	logger.Info("alignment completed", "path", alignedPath)

	aligned, err := readFasta(alignedPath)
	if err != nil {
		return err
	}
	freqs, err := baseFrequencies(aligned)
	if err != nil {
		return err
	}

	matrixPath := filepath.Join(outputDir, "consensus_matrix.tsv")
	if err := writeFrequencyMatrix(matrixPath, freqs); err != nil {
		return err
	}
	logger.Info("consensus matrix saved", "path", matrixPath)

	summaryPath := filepath.Join(outputDir, "summary.txt")
	if err := writeSummary(summaryPath, scanner, pool, len(files), consensus(freqs)); err != nil {
		return err
	}
	logger.Info("summary saved", "path", summaryPath)

	logger.Info("sequence scanning completed")
	return nil
}

// findReadFiles lists the FASTQ files in dir, sorted by name. QC'd
// reads (*_qc.fastq.gz) are preferred; when none exist any .fastq or
// .fastq.gz file is taken.
func findReadFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", dir, err)
	}

	var qc, plain []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, "_qc.fastq.gz"):
			qc = append(qc, filepath.Join(dir, name))
		case strings.HasSuffix(name, ".fastq") || strings.HasSuffix(name, ".fastq.gz"):
			plain = append(plain, filepath.Join(dir, name))
		}
	}

	if len(qc) > 0 {
		return qc, nil
	}
	return plain, nil
}

// newLogger builds the run logger: console output on stderr mirrored
// into a log file beneath a timestamped directory under logBase. The
// file handle stays open for the life of the process.
func newLogger(logBase string) (*log.Logger, error) {
	logDir := filepath.Join(logBase, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	logPath := filepath.Join(logDir, "scan_sequences.log.txt")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(io.MultiWriter(os.Stderr, f), log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	logger.Info("logging", "path", logPath)

	return logger, nil
}
