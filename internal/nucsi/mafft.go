package nucsi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// align writes the sequences to a temporary FASTA file, runs MAFFT
// against it and saves the alignment to aligned_sequences.fasta in
// outputDir. Returns the aligned file's path.
//
// https://mafft.cbrc.jp/alignment/software/manual/manual.html
func align(sequences []string, outputDir string) (string, error) {
	if len(sequences) == 0 {
		return "", errors.New("no sequences to align")
	}

	in, err := os.CreateTemp("", "nucsi-mafft-*.fasta")
	if err != nil {
		return "", fmt.Errorf("failed to create mafft input: %v", err)
	}
	defer os.Remove(in.Name())

	if err := writeFasta(in, sequences); err != nil {
		_ = in.Close()
		return "", fmt.Errorf("failed to write mafft input: %v", err)
	}
	if err := in.Close(); err != nil {
		return "", err
	}

	// MAFFT writes the alignment to stdout and progress to stderr
	mafftCmd := exec.Command("mafft", "--auto", in.Name())

	var stdout, stderr bytes.Buffer
	mafftCmd.Stdout = &stdout
	mafftCmd.Stderr = &stderr

	if err := mafftCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute mafft: %v: %s", err, stderr.String())
	}

	out := filepath.Join(outputDir, "aligned_sequences.fasta")
	if err := os.WriteFile(out, stdout.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to save alignment: %v", err)
	}

	return out, nil
}
