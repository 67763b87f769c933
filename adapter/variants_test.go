package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantConstructorsSetKind(t *testing.T) {
	front, err := NewFrontAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, FrontKind, front.kind)

	back, err := NewBackAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, BackKind, back.kind)

	anywhere, err := NewAnywhereAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, AnywhereKind, anywhere.kind)

	nif, err := NewNonInternalFrontAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, NonInternalFrontKind, nif.kind)

	nib, err := NewNonInternalBackAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, NonInternalBackKind, nib.kind)

	prefix, err := NewPrefixAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, PrefixKind, prefix.kind)

	suffix, err := NewSuffixAdapter("ACGT")
	assert.NoError(t, err)
	assert.Equal(t, SuffixKind, suffix.kind)
}

func TestNonInternalFrontRejectsFullyInternalMatch(t *testing.T) {
	// A fully-internal occurrence (junk on both sides) is rejected; the
	// alignment of a non-internal front adapter must begin at the first
	// base of the read.
	a, err := NewNonInternalFrontAdapter("AGATCGG", WithMaxErrorRate(0))
	assert.NoError(t, err)

	anchored := a.MatchTo("AGATCGGTAIL")
	assert.NotNil(t, anchored)

	internal := a.MatchTo("XXXAGATCGGXXX")
	assert.Nil(t, internal)
}
