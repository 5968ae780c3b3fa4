package nucsi

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// maxMismatches is the number of per-base differences tolerated when
// comparing a motif against a same-length window of a read.
const maxMismatches = 2

// Scanner holds the anchor motifs and length bound used to pull
// candidate cleavage-site sequences out of reads, plus the logger the
// per-file diagnostics are written to.
type Scanner struct {
	// Upstream is the upstream anchor motif (5'->3')
	Upstream string

	// Downstream is the downstream anchor motif (5'->3')
	Downstream string

	// MaxLength is the longest extracted sequence kept
	MaxLength int

	log *log.Logger
}

// NewScanner validates the motifs and returns a Scanner. Empty motifs
// are rejected here, before any read is touched.
func NewScanner(upstream, downstream string, maxLength int, logger *log.Logger) (*Scanner, error) {
	if upstream == "" {
		return nil, errors.New("no upstream motif set")
	}
	if downstream == "" {
		return nil, errors.New("no downstream motif set")
	}

	return &Scanner{
		Upstream:   upstream,
		Downstream: downstream,
		MaxLength:  maxLength,
		log:        logger,
	}, nil
}

// exactMatches returns the start offset of every non-overlapping,
// case-insensitive occurrence of motif in seq.
func exactMatches(seq, motif string) []int {
	if motif == "" {
		return nil
	}
	seq = strings.ToUpper(seq)
	motif = strings.ToUpper(motif)

	var starts []int
	for i := 0; ; {
		j := strings.Index(seq[i:], motif)
		if j < 0 {
			break
		}
		starts = append(starts, i+j)
		i += j + len(motif)
	}

	return starts
}

// fuzzyMatches returns the start offset of every window of seq that
// differs from motif in at most maxMismatches positions. Windows
// overlap freely, unlike the exact scan.
func fuzzyMatches(seq, motif string) []int {
	if motif == "" || len(seq) < len(motif) {
		return nil
	}
	seq = strings.ToUpper(seq)
	motif = strings.ToUpper(motif)

	var starts []int
window:
	for i := 0; i <= len(seq)-len(motif); i++ {
		mismatches := 0
		for j := 0; j < len(motif); j++ {
			if seq[i+j] != motif[j] {
				if mismatches++; mismatches > maxMismatches {
					continue window
				}
			}
		}
		starts = append(starts, i)
	}

	return starts
}

// anchorPositions unions the exact and fuzzy matches of motif in seq
// and returns the deduplicated offsets sorted ascending. Each offset is
// the match start plus shift: the motif's length for an upstream anchor
// (the position just past the match) or zero for a downstream anchor.
// The exact matches are usually a subset of the fuzzy ones, but both
// sources are always collected.
func anchorPositions(seq, motif string, shift int) []int {
	seen := make(map[int]bool)
	for _, start := range exactMatches(seq, motif) {
		seen[start+shift] = true
	}
	for _, start := range fuzzyMatches(seq, motif) {
		seen[start+shift] = true
	}

	positions := make([]int, 0, len(seen))
	for p := range seen {
		positions = append(positions, p)
	}
	sort.Ints(positions)

	return positions
}

// scanOrientation finds every sequence bounded by the motif pair in a
// single orientation. Each upstream anchor is paired greedily with the
// first downstream anchor past it. A downstream anchor may be shared by
// several upstream anchors and extracted sequences are not
// deduplicated, so the same bases can be reported more than once.
func (s *Scanner) scanOrientation(seq, upstream, downstream string) []string {
	upstreamEnds := anchorPositions(seq, upstream, len(upstream))
	downstreamStarts := anchorPositions(seq, downstream, 0)

	var found []string
	for _, up := range upstreamEnds {
		for _, down := range downstreamStarts {
			if down > up {
				if extracted := seq[up:down]; len(extracted) > 0 && len(extracted) <= s.MaxLength {
					found = append(found, extracted)
				}
				break // only the first downstream anchor past this upstream one
			}
		}
	}

	return found
}

// FindInRead extracts the candidate sequences from one read in both
// orientations: forward with the motifs as configured, then against the
// opposite strand by searching the same read for the reverse complement
// motifs in swapped order. Forward results come first.
func (s *Scanner) FindInRead(seq string) []string {
	found := s.scanOrientation(seq, s.Upstream, s.Downstream)
	found = append(found, s.scanOrientation(seq, reverseComplement(s.Downstream), reverseComplement(s.Upstream))...)

	return found
}
