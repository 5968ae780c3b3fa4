package nucsi

var complement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
	'a': 't',
	't': 'a',
	'g': 'c',
	'c': 'g',
}

// reverseComplement returns the reverse complement of a sequence. Case
// is preserved and characters without a complement (ambiguity codes,
// gaps) pass through unchanged.
func reverseComplement(seq string) string {
	rc := []byte(seq)
	for i, j := 0, len(rc)-1; i < j; i, j = i+1, j-1 {
		rc[i], rc[j] = rc[j], rc[i]
	}

	for i, c := range rc {
		if comp, ok := complement[c]; ok {
			rc[i] = comp
		}
	}

	return string(rc)
}
