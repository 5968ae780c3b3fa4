package nucsi

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func Test_writeFasta(t *testing.T) {
	b := &bytes.Buffer{}
	if err := writeFasta(b, []string{"ACGT", "TTGA"}); err != nil {
		t.Fatal(err)
	}

	want := ">sequence_000000\nACGT\n>sequence_000001\nTTGA\n"
	if got := b.String(); got != want {
		t.Errorf("writeFasta() = %q, want %q", got, want)
	}
}

func Test_readFasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aligned.fasta")
	content := ">sequence_000000\nAC-GT\n>sequence_000001\nAC\nGTT\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readFasta(path)
	if err != nil {
		t.Fatal(err)
	}

	// wrapped sequence lines are joined per record
	want := []string{"AC-GT", "ACGTT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readFasta() = %v, want %v", got, want)
	}
}

func Test_readFasta_empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fasta")
	if err := os.WriteFile(path, []byte("\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := readFasta(path); err == nil {
		t.Error("readFasta() accepted a file without records")
	}
}

func Test_writeSummary(t *testing.T) {
	s := newTestScanner(t, 40)

	path := filepath.Join(t.TempDir(), "summary.txt")
	if err := writeSummary(path, s, []string{"ACGT", "AC", "ACGTTT"}, 2, "ACGT"); err != nil {
		t.Fatal(err)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		"Upstream motif: " + testUpstream,
		"Downstream motif: " + testDownstream,
		"Maximum sequence length: 40",
		"Total sequences found: 3",
		"Files processed: 2",
		"Average sequence length: 4.0",
		"Sequence length range: 2-6",
		"Consensus sequence: ACGT",
	} {
		if !strings.Contains(string(dat), line+"\n") {
			t.Errorf("summary missing %q:\n%s", line, dat)
		}
	}
}
