package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnDuplicateAdaptersDoesNotModify(t *testing.T) {
	a, err := NewBackAdapter("ACGT", WithName("dup"))
	assert.NoError(t, err)
	b, err := NewBackAdapter("ACGT", WithName("dup"))
	assert.NoError(t, err)
	// Must not panic or alter either adapter; this only logs.
	WarnDuplicateAdapters([]Matchable{a, b})
	assert.Equal(t, "dup", a.Name())
	assert.Equal(t, "dup", b.Name())
}

func TestSequenceOfSingleAdapter(t *testing.T) {
	a, err := NewBackAdapter("ACGT")
	assert.NoError(t, err)
	seq, ok := sequenceOf(a)
	assert.True(t, ok)
	assert.Equal(t, "ACGT", seq)
}

func TestSequenceOfNonSingleAdapter(t *testing.T) {
	a, err := NewBackAdapter("ACGT")
	assert.NoError(t, err)
	multi := NewMultipleAdapters("set", []Matchable{a})
	_, ok := sequenceOf(multi)
	assert.False(t, ok)
}
