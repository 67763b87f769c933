package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarioBackAdapter(t *testing.T) {
	a, err := NewBackAdapter("AGATCGG", WithMaxErrorRate(0.1), WithMinOverlap(3))
	assert.NoError(t, err)
	m := a.MatchTo("AAAAAGATCGG")
	assert.NotNil(t, m)
	start, stop := m.RemainderInterval()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, stop)
	assert.Equal(t, 0, m.Errors())
	assert.Equal(t, 7, m.Matches())
	assert.Equal(t, "AAAA", m.Trimmed("AAAAAGATCGG"))
}

func TestScenarioFrontAdapter(t *testing.T) {
	a, err := NewFrontAdapter("AGATCGG")
	assert.NoError(t, err)
	m := a.MatchTo("AGATCGGTAIL")
	assert.NotNil(t, m)
	assert.Equal(t, 0, m.Errors())
	assert.Equal(t, "TAIL", m.Trimmed("AGATCGGTAIL"))
}

func TestScenarioPrefixAdapter(t *testing.T) {
	a, err := NewPrefixAdapter("ACGT", WithMaxErrorRate(0))
	assert.NoError(t, err)

	m := a.MatchTo("ACGTXXXX")
	assert.NotNil(t, m)
	assert.Equal(t, 0, m.Errors())
	assert.Equal(t, 4, m.Matches())

	m2 := a.MatchTo("TACGTXXX")
	assert.Nil(t, m2)
}

func TestScenarioAnywhereAdapter(t *testing.T) {
	a, err := NewAnywhereAdapter("GGC")
	assert.NoError(t, err)

	m := a.MatchTo("GGCBAR")
	assert.NotNil(t, m)
	_, ok := m.(*RemoveBeforeMatch)
	assert.True(t, ok)

	m2 := a.MatchTo("BARGGC")
	assert.NotNil(t, m2)
	_, ok2 := m2.(*RemoveAfterMatch)
	assert.True(t, ok2)
}

func TestInvariantsHoldOverScenarios(t *testing.T) {
	a, err := NewBackAdapter("AGATCGG", WithMaxErrorRate(0.1), WithMinOverlap(3))
	assert.NoError(t, err)
	m := a.MatchTo("AAAAAGATCGG")
	assert.NotNil(t, m)
	astart, astop := 0, 7 // RemoveAfterMatch exposes adapter span via astop field indirectly through RetainedAdapterInterval
	retStart, retStop := m.RetainedAdapterInterval()
	assert.True(t, retStart <= retStop)
	_ = astart
	_ = astop
	errs := float64(m.Errors())
	assert.True(t, errs/7.0 <= 0.1)
}

func TestEmptySequenceRejected(t *testing.T) {
	_, err := NewFrontAdapter("")
	assert.Error(t, err)
	aerr := err.(*Error)
	assert.Equal(t, KindEmptySequence, aerr.Kind)
}

func TestInvalidCharacterRejected(t *testing.T) {
	_, err := NewFrontAdapter("ACZT")
	assert.Error(t, err)
}

func TestMaxErrorRateAsAbsoluteCount(t *testing.T) {
	// rate >= 1 is interpreted as an absolute error count, divided by length.
	a, err := NewBackAdapter("AGATCGG", WithMaxErrorRate(2))
	assert.NoError(t, err)
	assert.InDelta(t, 2.0/7.0, a.maxErrorRate, 1e-9)
}

func TestMinOverlapClampedToSequenceLength(t *testing.T) {
	a, err := NewBackAdapter("AC", WithMinOverlap(100))
	assert.NoError(t, err)
	assert.Equal(t, 2, a.minOverlap)
}

func TestPrefixSuffixForceFullOverlap(t *testing.T) {
	a, err := NewPrefixAdapter("ACGT", WithMinOverlap(1))
	assert.NoError(t, err)
	assert.Equal(t, 4, a.minOverlap)
}

func TestSpecStrings(t *testing.T) {
	cases := []struct {
		build func() (*SingleAdapter, error)
		want  string
	}{
		{func() (*SingleAdapter, error) { return NewFrontAdapter("ACGT") }, "ACGT..."},
		{func() (*SingleAdapter, error) { return NewBackAdapter("ACGT") }, "ACGT"},
		{func() (*SingleAdapter, error) { return NewAnywhereAdapter("ACGT") }, "...ACGT..."},
		{func() (*SingleAdapter, error) { return NewNonInternalFrontAdapter("ACGT") }, "XACGT..."},
		{func() (*SingleAdapter, error) { return NewNonInternalBackAdapter("ACGT") }, "ACGTX"},
		{func() (*SingleAdapter, error) { return NewPrefixAdapter("ACGT") }, "^ACGT..."},
		{func() (*SingleAdapter, error) { return NewSuffixAdapter("ACGT") }, "ACGT$"},
	}
	for _, c := range cases {
		a, err := c.build()
		assert.NoError(t, err)
		assert.Equal(t, c.want, a.Spec())
	}
}

func TestNoIndelsShortCircuitsToComparer(t *testing.T) {
	a, err := NewPrefixAdapter("ACGT", WithMaxErrorRate(0.25), WithIndels(false))
	assert.NoError(t, err)
	assert.NotNil(t, a.prefixComparer)
	assert.Nil(t, a.aligner)

	m := a.MatchTo("AXGTREST")
	assert.NotNil(t, m)
	assert.Equal(t, 1, m.Errors())
	assert.Equal(t, 3, m.Matches())
}
