package adapter

// iupacAlphabet is the set of bases a normalised adapter sequence may
// contain, mirroring umi's alphabetMap style but over the full IUPAC
// ambiguity codes rather than just ACGTN.
var iupacAlphabet = map[byte]bool{
	'A': true, 'B': true, 'C': true, 'D': true, 'G': true, 'H': true,
	'K': true, 'M': true, 'N': true, 'R': true, 'S': true, 'T': true,
	'U': true, 'V': true, 'W': true, 'X': true, 'Y': true,
}

// pureACGT is the subset of iupacAlphabet with no ambiguity: adapters
// built entirely from these bases never need adapter-side wildcard
// matching.
var pureACGT = map[byte]bool{'A': true, 'C': true, 'G': true, 'T': true}

// gcEquivalentWithWildcards and gcEquivalentPlain are the alphabets
// random_match_probabilities treats as "GC" when computing the
// probability of a random DNA base matching a given adapter position.
var (
	gcEquivalentWithWildcards = map[byte]bool{
		'C': true, 'G': true, 'R': true, 'Y': true, 'S': true, 'K': true,
		'M': true, 'B': true, 'D': true, 'H': true, 'V': true, 'N': true,
	}
	gcEquivalentPlain = map[byte]bool{'G': true, 'C': true}
)

// normalizeSequence upper-cases seq and rewrites U to T, matching the
// construction-time normalisation spec.md requires before validation.
func normalizeSequence(seq string) string {
	buf := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c == 'U' {
			c = 'T'
		}
		buf[i] = c
	}
	return string(buf)
}

// validateIUPAC checks that every byte of seq (already normalised) is a
// valid IUPAC code, returning the first offending position.
func validateIUPAC(seq string) error {
	for i := 0; i < len(seq); i++ {
		if !iupacAlphabet[seq[i]] {
			return invalidCharacterError(seq, i, seq[i])
		}
	}
	return nil
}

// needsAdapterWildcards reports whether seq contains any ambiguity code
// beyond plain ACGT, in which case adapter-side wildcard matching must
// stay enabled.
func needsAdapterWildcards(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !pureACGT[seq[i]] {
			return true
		}
	}
	return false
}
