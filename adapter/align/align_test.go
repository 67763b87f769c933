package align

import (
	"testing"

	"github.com/antzucaro/matchr"
	"github.com/stretchr/testify/assert"
)

func TestLocateExactBack(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.1, Back, false, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("READADAPTER")
	assert.True(t, ok)
	assert.Equal(t, 7, loc.Matches)
	assert.Equal(t, 0, loc.Errors)
	assert.Equal(t, 4, loc.RStart)
	assert.Equal(t, 11, loc.RStop)
}

func TestLocateBackWithTrailingJunk(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.1, Back, false, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("READADAPTERJUNK")
	assert.True(t, ok)
	assert.Equal(t, 4, loc.RStart)
	assert.Equal(t, 11, loc.RStop)
}

func TestLocateFrontAllowsLeadingJunk(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.1, Front, false, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("JUNKADAPTERREAD")
	assert.True(t, ok)
	assert.Equal(t, 4, loc.RStart)
	assert.Equal(t, 11, loc.RStop)
}

func TestLocatePrefixRequiresStart(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.1, Prefix, false, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("ADAPTERREAD")
	assert.True(t, ok)
	assert.Equal(t, 0, loc.RStart)

	// A leading junk base forces at least one error against an anchored
	// prefix match, which a max error rate of 0.1 over 7 bases cannot absorb.
	_, ok = a.Locate("XADAPTERREAD")
	assert.False(t, ok)
}

func TestLocateSuffixRequiresEnd(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.1, Suffix, false, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("READADAPTER")
	assert.True(t, ok)
	assert.Equal(t, 11, loc.RStop)
}

func TestLocateAnywhereFindsMidString(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.1, Anywhere, false, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("JUNKADAPTERJUNK")
	assert.True(t, ok)
	assert.Equal(t, 4, loc.RStart)
	assert.Equal(t, 11, loc.RStop)
}

func TestLocateRespectsMaxErrorRate(t *testing.T) {
	a, err := NewAligner("AAAAAAAAAA", 0.1, Back, false, false, 1, 5)
	assert.NoError(t, err)

	_, ok := a.Locate("READAAXAAXAAAA")
	assert.False(t, ok, "two errors in ten bases exceeds a 0.1 error rate")
}

func TestLocateAllowsSubstitutionWithinBudget(t *testing.T) {
	a, err := NewAligner("AAAAAAAAAA", 0.2, Back, false, false, 1, 5)
	assert.NoError(t, err)

	loc, ok := a.Locate("READAAAAAXAAAA")
	assert.True(t, ok)
	assert.Equal(t, 1, loc.Errors)
}

func TestLocateNoIndelsForcesSameLength(t *testing.T) {
	a, err := NewAligner("AAAA", 0.5, Prefix, false, false, prohibitiveIndelCost, 4)
	assert.NoError(t, err)

	loc, ok := a.Locate("AAAT")
	assert.True(t, ok)
	assert.Equal(t, 1, loc.Errors)
	assert.Equal(t, 4, loc.RStop-loc.RStart)
}

func TestLocateWildcardsInReference(t *testing.T) {
	a, err := NewAligner("ANAPTER", 0.1, Back, true, false, 1, 3)
	assert.NoError(t, err)

	loc, ok := a.Locate("READAGAPTER")
	assert.True(t, ok)
	assert.Equal(t, 0, loc.Errors)
}

func TestLocateMinOverlapRejectsShortMatch(t *testing.T) {
	a, err := NewAligner("ADAPTER", 0.3, Anywhere, false, false, 1, 6)
	assert.NoError(t, err)

	_, ok := a.Locate("READAD")
	assert.False(t, ok)
}

// TestLocateAgainstMatchr cross-checks the unrestricted-indel Suffix
// alignment's error count against an independent Levenshtein
// implementation. Suffix forces the full adapter to be consumed and the
// full read to be consumed to its end, leaving only the read's start
// free, so the chosen window is exactly the edit distance between the
// adapter and that trailing substring.
func TestLocateAgainstMatchr(t *testing.T) {
	cases := []struct {
		adapter, read string
	}{
		{"GATCGGAAGAGC", "TTTTTTTTTTGATCGGAAGAGC"},
		{"GATCGGAAGAGC", "TTTTTTTTTTGATCGGAAGAGT"},
		{"GATCGGAAGAGC", "TTTTTTTTTTGATGGGAAGAGC"},
	}
	for _, c := range cases {
		a, err := NewAligner(c.adapter, 0.5, Suffix, false, false, 1, 3)
		assert.NoError(t, err)
		loc, ok := a.Locate(c.read)
		assert.True(t, ok)
		assert.Equal(t, len(c.read), loc.RStop)
		want := matchr.Levenshtein(c.adapter, c.read[loc.RStart:loc.RStop])
		assert.Equal(t, want, loc.Errors)
	}
}

func TestDPMatrixDebug(t *testing.T) {
	a, err := NewAligner("AC", 0.5, Back, false, false, 1, 1)
	assert.NoError(t, err)
	a.EnableDebug()
	_, ok := a.Locate("GAC")
	assert.True(t, ok)
	assert.NotEmpty(t, a.DPMatrix())
}
