package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/bio/encoding/fastq"
)

func TestRemoveBeforeMatch(t *testing.T) {
	a, err := NewFrontAdapter("AGATCGG")
	assert.NoError(t, err)
	read := "junkAGATCGGrest"
	m := a.MatchTo(read)
	assert.NotNil(t, m)
	assert.Equal(t, "rest", m.Trimmed(read))
	start, stop := m.RemainderInterval()
	assert.Equal(t, read[start:stop], m.Trimmed(read))
	assert.Equal(t, "", m.AdjacentBase())
	assert.Equal(t, a.Name(), m.AdapterName())
}

func TestRemoveAfterMatch(t *testing.T) {
	a, err := NewBackAdapter("AGATCGG")
	assert.NoError(t, err)
	read := "keepAGATCGGjunk"
	m := a.MatchTo(read)
	assert.NotNil(t, m)
	assert.Equal(t, "keep", m.Trimmed(read))
	start, stop := m.RemainderInterval()
	assert.Equal(t, read[start:stop], m.Trimmed(read))
	assert.NotEmpty(t, m.AdapterName())
}

func TestRemoveAfterMatchAdjacentBaseEmptyAtStart(t *testing.T) {
	a, err := NewBackAdapter("AGATCGG")
	assert.NoError(t, err)
	read := "AGATCGGjunk"
	m := a.MatchTo(read)
	assert.NotNil(t, m)
	assert.Equal(t, "", m.AdjacentBase())
}

func TestBuildInfoRecord(t *testing.T) {
	read := fastq.Read{ID: "r1", Seq: "AAACGTTTT", Qual: "IIIIIIIII"}
	rec := buildInfoRecord(read, 3, 6, 0, "myAdapter")
	assert.Equal(t, "AAA", rec.Before)
	assert.Equal(t, "CGT", rec.Core)
	assert.Equal(t, "TTT", rec.After)
	assert.Equal(t, "III", rec.QualCore)
	assert.Equal(t, "myAdapter", rec.AdapterName)
}

func TestBuildInfoRecordNoQuality(t *testing.T) {
	read := fastq.Read{ID: "r1", Seq: "AAACGTTTT"}
	rec := buildInfoRecord(read, 3, 6, 1, "myAdapter")
	assert.Equal(t, "", rec.QualCore)
}

func TestReconstructWildcardsNoIndels(t *testing.T) {
	out := reconstructWildcards("ACNT", 0, 4, "ACGT", 0, 4, 'N')
	assert.Equal(t, "G", out)
}

func TestReconstructWildcardsLengthMismatchReturnsEmpty(t *testing.T) {
	out := reconstructWildcards("ACNT", 0, 4, "ACGGT", 0, 5, 'N')
	assert.Equal(t, "", out)
}
