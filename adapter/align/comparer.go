package align

// PrefixComparer computes the Hamming distance between a reference
// sequence and the prefix of equal length taken from a query, without
// paying for a full DP pass. It is the indel-free fast path used by
// prefix adapters built with indels disabled, where min_overlap equals
// the full adapter length and the alignment is known in advance to be
// anchored at position 0.
type PrefixComparer struct {
	ref           string
	wildcardRef   bool
	wildcardQuery bool
}

// NewPrefixComparer builds a PrefixComparer for ref.
func NewPrefixComparer(ref string, wildcardRef, wildcardQuery bool) *PrefixComparer {
	return &PrefixComparer{ref: ref, wildcardRef: wildcardRef, wildcardQuery: wildcardQuery}
}

// Compare returns the number of mismatches between the comparer's
// reference and the first len(ref) bytes of query, or ok=false if query
// is shorter than the reference.
func (c *PrefixComparer) Compare(query string) (errs int, ok bool) {
	if len(query) < len(c.ref) {
		return 0, false
	}
	for i := 0; i < len(c.ref); i++ {
		if !basesMatch(c.ref[i], query[i], c.wildcardRef, c.wildcardQuery) {
			errs++
		}
	}
	return errs, true
}

// SuffixComparer is PrefixComparer's mirror image: it anchors the
// reference to the tail of the query.
type SuffixComparer struct {
	ref           string
	wildcardRef   bool
	wildcardQuery bool
}

// NewSuffixComparer builds a SuffixComparer for ref.
func NewSuffixComparer(ref string, wildcardRef, wildcardQuery bool) *SuffixComparer {
	return &SuffixComparer{ref: ref, wildcardRef: wildcardRef, wildcardQuery: wildcardQuery}
}

// Compare returns the number of mismatches between the comparer's
// reference and the last len(ref) bytes of query, or ok=false if query
// is shorter than the reference.
func (c *SuffixComparer) Compare(query string) (errs int, ok bool) {
	if len(query) < len(c.ref) {
		return 0, false
	}
	offset := len(query) - len(c.ref)
	for i := 0; i < len(c.ref); i++ {
		if !basesMatch(c.ref[i], query[offset+i], c.wildcardRef, c.wildcardQuery) {
			errs++
		}
	}
	return errs, true
}
