package adapter

import (
	"strings"

	"github.com/biogo/store/llrb"
	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/log"

	"github.com/grailbio/bio/adapter/align"
)

// IsAcceptableForIndex reports whether a can be folded into an indexed
// set of the given polarity: it must be of the matching kind, carry no
// wildcards on either side, and its error budget floor(len*max_error_rate)
// must not exceed 2. It never raises; NewIndexedPrefixAdapterSet and
// NewIndexedSuffixAdapterSet do, for any member that fails this check.
func IsAcceptableForIndex(a *SingleAdapter, wantPrefix bool) bool {
	if wantPrefix && a.kind != PrefixKind {
		return false
	}
	if !wantPrefix && a.kind != SuffixKind {
		return false
	}
	if a.adapterWildcards || a.readWildcards {
		return false
	}
	return editBudget(a) <= 2
}

func editBudget(a *SingleAdapter) int {
	return int(float64(len(a.sequence)) * a.maxErrorRate)
}

// lengthKey orders descending: ascending llrb traversal visits the
// longest variant length first.
type lengthKey int

func (k lengthKey) Compare(other llrb.Comparable) int {
	return int(other.(lengthKey)) - int(k)
}

type neighborEntry struct {
	variant string
	adapter *SingleAdapter
	errors  int
	matches int
}

// indexedSet is the shared build/match machinery behind
// IndexedPrefixAdapterSet and IndexedSuffixAdapterSet; the two exported
// types wrap it and differ only in which affix of the read they extract
// and which Match variant they synthesise on a hit.
type indexedSet struct {
	name         string
	members      []*SingleAdapter
	fallback     *MultipleAdapters
	buckets      map[uint64][]neighborEntry
	lengths      []int // descending, distinct
	singleLength bool
	warned       map[string]bool
}

func newIndexedSet(name string, members []*SingleAdapter, wantPrefix bool) (*indexedSet, error) {
	if len(members) == 0 {
		return nil, emptyAdapterListError()
	}
	resolved := resolveName(name)
	set := &indexedSet{
		name:     resolved,
		members:  members,
		buckets:  make(map[uint64][]neighborEntry),
		warned:   make(map[string]bool),
	}
	lengthTree := llrb.Tree{}
	matchables := make([]Matchable, len(members))
	for i, m := range members {
		matchables[i] = m
	}
	set.fallback = NewMultipleAdapters(resolved+"-fallback", matchables)

	for _, m := range members {
		if !IsAcceptableForIndex(m, wantPrefix) {
			reason := "wrong polarity or wildcards present"
			if m.adapterWildcards || m.readWildcards {
				reason = "adapter carries wildcards"
			} else if editBudget(m) > 2 {
				reason = "error budget exceeds 2 edits"
			}
			return nil, indexRejectionError(m.Name(), reason)
		}
		k := editBudget(m)
		var variants []align.Variant
		if m.indels {
			variants = align.EditEnvironment(m.sequence, k)
		} else {
			variants = align.HammingEnvironment(m.sequence, k)
		}
		for _, v := range variants {
			matches := len(m.sequence) - v.Errors
			set.insert(v.Sequence, m, v.Errors, matches)
			if c := lengthTree.Get(lengthKey(len(v.Sequence))); c == nil {
				lengthTree.Insert(lengthKey(len(v.Sequence)))
			}
		}
	}

	lengthTree.Do(func(item llrb.Comparable) bool {
		set.lengths = append(set.lengths, int(item.(lengthKey)))
		return false // not done: visit every length
	})
	set.singleLength = len(set.lengths) == 1
	return set, nil
}

func (s *indexedSet) Name() string { return s.name }

func (s *indexedSet) EnableDebug() {
	for _, m := range s.members {
		m.EnableDebug()
	}
}

func (s *indexedSet) insert(variant string, adapter *SingleAdapter, errs, matches int) {
	key := farm.Hash64([]byte(variant))
	bucket := s.buckets[key]
	for i, e := range bucket {
		if e.variant != variant {
			continue
		}
		switch {
		case matches > e.matches:
			bucket[i] = neighborEntry{variant: variant, adapter: adapter, errors: errs, matches: matches}
		case matches == e.matches:
			if !s.warned[variant] {
				log.Error.Printf("adapter: ambiguous indexed entry %q shared by %s and %s", variant, e.adapter.Name(), adapter.Name())
				s.warned[variant] = true
			}
		}
		s.buckets[key] = bucket
		return
	}
	s.buckets[key] = append(bucket, neighborEntry{variant: variant, adapter: adapter, errors: errs, matches: matches})
}

func (s *indexedSet) lookup(affix string) (neighborEntry, bool) {
	key := farm.Hash64([]byte(affix))
	for _, e := range s.buckets[key] {
		if e.variant == affix {
			return e, true
		}
	}
	return neighborEntry{}, false
}

func toUpper(s string) string {
	buf := []byte(s)
	for i := range buf {
		if buf[i] >= 'a' && buf[i] <= 'z' {
			buf[i] -= 'a' - 'A'
		}
	}
	return string(buf)
}

// IndexedPrefixAdapterSet replaces per-read alignment with a precomputed
// edit-neighborhood lookup for a set of PrefixKind adapters.
type IndexedPrefixAdapterSet struct{ *indexedSet }

// NewIndexedPrefixAdapterSet builds an indexed set from prefix adapters.
func NewIndexedPrefixAdapterSet(name string, members []*SingleAdapter) (*IndexedPrefixAdapterSet, error) {
	s, err := newIndexedSet(name, members, true)
	if err != nil {
		return nil, err
	}
	return &IndexedPrefixAdapterSet{s}, nil
}

func (s *IndexedPrefixAdapterSet) MatchTo(read string) Match {
	if s.singleLength {
		return s.matchSingleLength(read, true)
	}
	return s.matchMultiLength(read, true)
}

// IndexedSuffixAdapterSet mirrors IndexedPrefixAdapterSet for SuffixKind
// adapters.
type IndexedSuffixAdapterSet struct{ *indexedSet }

// NewIndexedSuffixAdapterSet builds an indexed set from suffix adapters.
func NewIndexedSuffixAdapterSet(name string, members []*SingleAdapter) (*IndexedSuffixAdapterSet, error) {
	s, err := newIndexedSet(name, members, false)
	if err != nil {
		return nil, err
	}
	return &IndexedSuffixAdapterSet{s}, nil
}

func (s *IndexedSuffixAdapterSet) MatchTo(read string) Match {
	if s.singleLength {
		return s.matchSingleLength(read, false)
	}
	return s.matchMultiLength(read, false)
}

func (s *indexedSet) matchSingleLength(read string, prefix bool) Match {
	length := s.lengths[0]
	affix, ok := extractAffix(read, length, prefix)
	if !ok {
		return nil
	}
	if strings.IndexByte(affix, 'N') >= 0 {
		return s.fallback.MatchTo(read)
	}
	e, ok := s.lookup(affix)
	if !ok {
		return nil
	}
	return synthesizeMatch(e, read, length, prefix)
}

func (s *indexedSet) matchMultiLength(read string, prefix bool) Match {
	var (
		best    neighborEntry
		bestLen int
		found   bool
	)
	for i, length := range s.lengths {
		affix, ok := extractAffix(read, length, prefix)
		if !ok {
			continue
		}
		if i == 0 && strings.IndexByte(affix, 'N') >= 0 {
			return s.fallback.MatchTo(read)
		}
		if found && length < best.matches {
			break
		}
		e, ok := s.lookup(affix)
		if !ok {
			continue
		}
		if !found || e.matches > best.matches || (e.matches == best.matches && e.errors < best.errors) {
			best, bestLen, found = e, length, true
		}
	}
	if !found {
		return nil
	}
	return synthesizeMatch(best, read, bestLen, prefix)
}

func extractAffix(read string, length int, prefix bool) (string, bool) {
	if len(read) < length {
		return "", false
	}
	if prefix {
		return toUpper(read[:length]), true
	}
	return toUpper(read[len(read)-length:]), true
}

func synthesizeMatch(e neighborEntry, read string, length int, prefix bool) Match {
	adapterLen := len(e.adapter.sequence)
	if prefix {
		return newRemoveBeforeMatch(e.adapter, 0, adapterLen, 0, length, e.matches, e.errors, read)
	}
	rstart := len(read) - length
	return newRemoveAfterMatch(e.adapter, 0, adapterLen, rstart, len(read), e.matches, e.errors, read)
}
