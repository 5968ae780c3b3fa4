package nucsi

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// fastqReader streams the sequence line of each record in a FASTQ file.
type fastqReader struct {
	scanner *bufio.Scanner
	line    int
}

func newFastqReader(r io.Reader) *fastqReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024) // long-read records
	return &fastqReader{scanner: sc}
}

// next returns the sequence of the following record, or io.EOF after
// the last one. A record is the standard four lines: header, sequence,
// separator, qualities. Anything else is malformed and fails the file.
func (f *fastqReader) next() (string, error) {
	if !f.scanner.Scan() {
		if err := f.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	f.line++

	header := f.scanner.Text()
	if !strings.HasPrefix(header, "@") {
		return "", fmt.Errorf("line %d: record header %q does not start with @", f.line, header)
	}

	rest := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		if !f.scanner.Scan() {
			if err := f.scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("line %d: truncated record %q", f.line, header)
		}
		f.line++
		rest = append(rest, f.scanner.Text())
	}

	seq, sep, quals := rest[0], rest[1], rest[2]
	if !strings.HasPrefix(sep, "+") {
		return "", fmt.Errorf("line %d: record separator %q does not start with +", f.line-1, sep)
	}
	if len(quals) != len(seq) {
		return "", fmt.Errorf("line %d: %d quality values for %d bases", f.line, len(quals), len(seq))
	}

	return seq, nil
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReads opens a FASTQ file, decompressing transparently when the
// file is gzipped. Compression is detected by the gzip magic number
// (1F 8B) or a .gz suffix.
func openReads(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}

	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}

	return fh, nil
}
