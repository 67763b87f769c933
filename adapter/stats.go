package adapter

import (
	"blainsmith.com/go/seahash"
)

// EndStats accumulates removal statistics for one adapter end (a 5' or 3'
// occurrence). errors[length][e] counts how many times a removed span of
// length bases was matched at e errors; adjacentBases counts the single
// base immediately preceding a back-style removal (keyed by the empty
// string when there was none, or none was recorded).
type EndStats struct {
	maxErrorRate         float64
	sequence             string
	effectiveLength      int
	hasWildcards         bool
	allowsPartialMatches bool
	removesPrefix        bool
	errorsByLength       map[int]map[int]int
	adjacentBases        map[string]int
}

func newEndStats(a *SingleAdapter) *EndStats {
	return &EndStats{
		maxErrorRate:         a.maxErrorRate,
		sequence:             a.sequence,
		effectiveLength:      a.EffectiveLength(),
		hasWildcards:         a.adapterWildcards,
		allowsPartialMatches: a.kind != PrefixKind && a.kind != SuffixKind,
		removesPrefix:        a.kind == FrontKind || a.kind == NonInternalFrontKind || a.kind == PrefixKind,
		errorsByLength:       map[int]map[int]int{},
		adjacentBases:        map[string]int{"A": 0, "C": 0, "G": 0, "T": 0, "": 0},
	}
}

func (e *EndStats) addMatch(length, errs int) {
	bucket, ok := e.errorsByLength[length]
	if !ok {
		bucket = map[int]int{}
		e.errorsByLength[length] = bucket
	}
	bucket[errs]++
}

func (e *EndStats) addAdjacentBase(base string) {
	if _, ok := e.adjacentBases[base]; !ok {
		base = ""
	}
	e.adjacentBases[base]++
}

// Merge folds other into e in place, returning an error if the two ends
// were not built from compatible adapter configurations.
func (e *EndStats) Merge(other *EndStats) error {
	if err := e.checkCompatible(other); err != nil {
		return err
	}
	for base, n := range other.adjacentBases {
		e.adjacentBases[base] += n
	}
	for length, byErrors := range other.errorsByLength {
		bucket, ok := e.errorsByLength[length]
		if !ok {
			bucket = map[int]int{}
			e.errorsByLength[length] = bucket
		}
		for errs, n := range byErrors {
			bucket[errs] += n
		}
	}
	return nil
}

func (e *EndStats) checkCompatible(other *EndStats) error {
	if e.maxErrorRate != other.maxErrorRate {
		return statisticsMismatchError("max error rate differs")
	}
	if e.sequence != other.sequence {
		return statisticsMismatchError("sequence differs")
	}
	if e.effectiveLength != other.effectiveLength {
		return statisticsMismatchError("effective length differs")
	}
	return nil
}

// Lengths reports, for every removed-span length seen so far, the total
// number of matches (summed across error counts) at that length.
func (e *EndStats) Lengths() map[int]int {
	out := make(map[int]int, len(e.errorsByLength))
	for length, byErrors := range e.errorsByLength {
		total := 0
		for _, n := range byErrors {
			total += n
		}
		out[length] = total
	}
	return out
}

// AllowsPartialMatches reports whether the underlying adapter can report a
// match shorter than its full sequence (false for PrefixKind/SuffixKind,
// which force min_overlap to the full sequence length).
func (e *EndStats) AllowsPartialMatches() bool { return e.allowsPartialMatches }

// RandomMatchProbabilities estimates, for i = 0..len(sequence), the
// probability that the first i bases of this end's adapter match a random
// sequence with the given GC content. For ends that remove a read prefix
// (FrontKind, NonInternalFrontKind, PrefixKind) the sequence is walked in
// reverse, so entry i covers the adapter's last i bases. Indels are not modelled. As in the
// source this is ported from, the estimate is not meaningful for
// AnywhereKind adapters, since their "prefix" orientation is arbitrary.
func (e *EndStats) RandomMatchProbabilities(gcContent float64) []float64 {
	seq := e.sequence
	if e.removesPrefix {
		seq = reverseString(seq)
	}
	allowed := gcEquivalentPlain
	if e.hasWildcards {
		allowed = gcEquivalentWithWildcards
	}
	p := 1.0
	probabilities := make([]float64, 0, len(seq)+1)
	probabilities = append(probabilities, p)
	for i := 0; i < len(seq); i++ {
		if allowed[seq[i]] {
			p *= gcContent / 2.0
		} else {
			p *= (1.0 - gcContent) / 2.0
		}
		probabilities = append(probabilities, p)
	}
	return probabilities
}

func reverseString(s string) string {
	buf := []byte(s)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Stats accumulates match statistics for one adapter, which may be a
// single-ended adapter (front or back populated, not both), a linked
// adapter (both populated, independently), or an anywhere adapter (both
// populated from the same underlying sequence, split by which polarity
// each individual match took).
type Stats struct {
	name                string
	front               *EndStats
	back                *EndStats
	reverseComplemented int
}

// NewSingleEndStats builds a Stats for a front- or back-style adapter,
// which removes sequence from exactly one end.
func NewSingleEndStats(a *SingleAdapter) *Stats {
	s := &Stats{name: a.Name()}
	switch a.kind {
	case FrontKind, NonInternalFrontKind, PrefixKind:
		s.front = newEndStats(a)
	default:
		s.back = newEndStats(a)
	}
	return s
}

// NewLinkedStats builds a Stats for a linked adapter, tracking its front
// and back component ends independently.
func NewLinkedStats(name string, front, back *SingleAdapter) *Stats {
	return &Stats{name: name, front: newEndStats(front), back: newEndStats(back)}
}

// NewAnywhereStats builds a Stats for an anywhere adapter: both ends are
// built from the same adapter, since a single AnywhereKind sequence can
// be reported as either a front or a back removal depending on the
// individual match.
func NewAnywhereStats(a *SingleAdapter) *Stats {
	return &Stats{name: a.Name(), front: newEndStats(a), back: newEndStats(a)}
}

// Name is the adapter name these statistics were accumulated for.
func (s *Stats) Name() string { return s.name }

// EndStatistics returns the front and back end accumulators, either of
// which may be nil.
func (s *Stats) EndStatistics() (front, back *EndStats) { return s.front, s.back }

// AddMatch records match against the appropriate end accumulator(s),
// dispatching on its concrete type. A LinkedMatch updates both ends from
// its respective components, each keyed by the match's own error and
// length counts (the aggregate-errors duplication across both buckets for
// a LinkedMatch is intentional: it mirrors the end-statistics accounting
// this package was ported from).
func (s *Stats) AddMatch(m Match) {
	switch v := m.(type) {
	case *RemoveBeforeMatch:
		if s.front != nil {
			s.front.addMatch(m.RemovedSequenceLength(), m.Errors())
		}
	case *RemoveAfterMatch:
		if s.back != nil {
			s.back.addMatch(m.RemovedSequenceLength(), m.Errors())
			s.back.addAdjacentBase(m.AdjacentBase())
		}
	case *LinkedMatch:
		if front := v.Front(); front != nil && s.front != nil {
			s.front.addMatch(front.RemovedSequenceLength(), m.Errors())
		}
		if back := v.Back(); back != nil && s.back != nil {
			s.back.addMatch(back.RemovedSequenceLength(), m.Errors())
			s.back.addAdjacentBase(back.AdjacentBase())
		}
	}
}

// AddReverseComplemented increments the count of reads whose reverse
// complement was matched instead of the read itself. Nothing in this
// package calls it.
func (s *Stats) AddReverseComplemented() { s.reverseComplemented++ }

// ReverseComplemented returns the accumulated reverse-complement count.
func (s *Stats) ReverseComplemented() int { return s.reverseComplemented }

// Merge folds other into s in place. Both Stats must share a name and
// have the same front/back shape (both present, or both absent, on each
// side), or Merge returns an error without modifying s.
func (s *Stats) Merge(other *Stats) error {
	if s.name != other.name {
		return statisticsMismatchError("adapter name differs")
	}
	if (s.front == nil) != (other.front == nil) || (s.back == nil) != (other.back == nil) {
		return statisticsMismatchError("end shape differs")
	}
	if s.front != nil && s.back != nil {
		if err := s.back.checkCompatible(other.back); err != nil {
			return err
		}
	}
	if s.front != nil {
		if err := s.front.Merge(other.front); err != nil {
			return err
		}
	}
	if s.back != nil {
		if err := s.back.Merge(other.back); err != nil {
			return err
		}
	}
	s.reverseComplemented += other.reverseComplemented
	return nil
}

// Fingerprint hashes the adapter's normalised sequence(s), letting callers
// shard statistics across workers by adapter identity before a final
// Merge reduce step.
func (s *Stats) Fingerprint() uint64 {
	h := seahash.New()
	if s.front != nil {
		h.Write([]byte(s.front.sequence))
	}
	h.Write([]byte{0})
	if s.back != nil {
		h.Write([]byte(s.back.sequence))
	}
	return h.Sum64()
}
