package nucsi

import (
	"fmt"
	"io"
)

// FileStats tallies per-read motif presence across one file. The counts
// use exact matching only, which is stricter than the extraction path's
// exact-plus-fuzzy policy; they are reported for diagnostics and never
// affect which sequences are extracted.
type FileStats struct {
	// TotalReads is the number of records processed
	TotalReads int

	// WithUpstream counts reads holding the upstream motif in either orientation
	WithUpstream int

	// WithDownstream counts reads holding the downstream motif in either orientation
	WithDownstream int

	// WithBoth counts reads holding both motifs in a matching orientation
	WithBoth int
}

// ProcessFile scans every read in one FASTQ file and returns the
// extracted sequences in read order, together with the file's
// diagnostic tallies. A record that cannot be parsed fails the whole
// file; there is no skip-and-continue.
func (s *Scanner) ProcessFile(path string) ([]string, FileStats, error) {
	var stats FileStats

	r, err := openReads(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer r.Close()

	upstreamRC := reverseComplement(s.Upstream)
	downstreamRC := reverseComplement(s.Downstream)

	var sequences []string
	fq := newFastqReader(r)
	for {
		seq, err := fq.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to parse %s: %v", path, err)
		}
		stats.TotalReads++

		upstreamCount := len(exactMatches(seq, s.Upstream))
		downstreamCount := len(exactMatches(seq, s.Downstream))
		upstreamRCCount := len(exactMatches(seq, upstreamRC))
		downstreamRCCount := len(exactMatches(seq, downstreamRC))

		if upstreamCount > 0 || upstreamRCCount > 0 {
			stats.WithUpstream++
		}
		if downstreamCount > 0 || downstreamRCCount > 0 {
			stats.WithDownstream++
		}
		if (upstreamCount > 0 && downstreamCount > 0) || (upstreamRCCount > 0 && downstreamRCCount > 0) {
			stats.WithBoth++
		}

		sequences = append(sequences, s.FindInRead(seq)...)
	}

	s.log.Info("processed reads",
		"total", stats.TotalReads,
		"with_upstream", stats.WithUpstream,
		"with_downstream", stats.WithDownstream,
		"with_both", stats.WithBoth,
	)

	return sequences, stats, nil
}
