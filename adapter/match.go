package adapter

import "github.com/grailbio/bio/encoding/fastq"

// Matchable is the shared capability of everything that can be asked to
// locate itself within a read: a single adapter, a linked adapter, a
// multi-adapter selector, or an indexed adapter set.
type Matchable interface {
	Name() string
	EnableDebug()
	// MatchTo returns the best match for sequence, or nil if none of the
	// adapter's acceptance conditions (error rate, overlap, anchoring) were
	// satisfied.
	MatchTo(sequence string) Match
}

// Match is a located, polarised alignment: which trimming direction it
// implies, and the coordinates needed to apply it and report on it.
type Match interface {
	// Trimmed returns what remains of read once this match is applied.
	Trimmed(read string) string
	// RemainderInterval is the read-index span kept after trimming.
	RemainderInterval() (start, stop int)
	// RetainedAdapterInterval is the read-index span associated with the
	// adapter occurrence, per spec's polarity-specific definition.
	RetainedAdapterInterval() (start, stop int)
	// GetInfoRecords renders one record per matched component.
	GetInfoRecords(read fastq.Read) []InfoRecord

	// Errors and Matches are the alignment's error and match counts, used
	// by the multi-adapter tie-break and by statistics accumulation.
	Errors() int
	Matches() int
	// RemovedSequenceLength is the number of read bases the match would
	// discard, the key statistics bucket on.
	RemovedSequenceLength() int
	// AdjacentBase is the single base adjacent to a back-style match (the
	// empty string if there is none, or for front-style matches).
	AdjacentBase() string
	// AdapterName is the name of the adapter (or component adapter) that
	// produced this match.
	AdapterName() string
}

// WildcardReporter is implemented by single-adapter matches only: it
// reconstructs which read bases aligned to each wildcard position in the
// adapter. LinkedMatch does not implement it, matching the original
// source where this is undefined for linked matches.
type WildcardReporter interface {
	Wildcards(wildcardChar byte) string
}

// InfoRecord is one row of the info-file style report, an 11-field
// fixed-order record. The leading empty field is kept for positional
// fidelity with the cutadapt info-file tuple format this mirrors.
type InfoRecord struct {
	Empty       string
	Errors      int
	RStart      int
	RStop       int
	Before      string
	Core        string
	After       string
	AdapterName string
	QualBefore  string
	QualCore    string
	QualAfter   string
}

func buildInfoRecord(read fastq.Read, rstart, rstop, errs int, adapterName string) InfoRecord {
	rec := InfoRecord{
		Errors:      errs,
		RStart:      rstart,
		RStop:       rstop,
		Before:      read.Seq[:rstart],
		Core:        read.Seq[rstart:rstop],
		After:       read.Seq[rstop:],
		AdapterName: adapterName,
	}
	if read.Qual != "" {
		rec.QualBefore = read.Qual[:rstart]
		rec.QualCore = read.Qual[rstart:rstop]
		rec.QualAfter = read.Qual[rstop:]
	}
	return rec
}

// RemoveBeforeMatch is produced by front-polarity adapters: everything up
// to and including the match is discarded.
type RemoveBeforeMatch struct {
	adapter       *SingleAdapter
	astart, astop int
	rstart, rstop int
	matches, errs int
	readLen       int
	read          string
}

func newRemoveBeforeMatch(a *SingleAdapter, astart, astop, rstart, rstop, matches, errs int, read string) *RemoveBeforeMatch {
	return &RemoveBeforeMatch{adapter: a, astart: astart, astop: astop, rstart: rstart, rstop: rstop, matches: matches, errs: errs, readLen: len(read), read: read}
}

func (m *RemoveBeforeMatch) Trimmed(read string) string { return read[m.rstop:] }

func (m *RemoveBeforeMatch) RemainderInterval() (int, int) { return m.rstop, m.readLen }

func (m *RemoveBeforeMatch) RetainedAdapterInterval() (int, int) { return m.rstart, m.readLen }

func (m *RemoveBeforeMatch) GetInfoRecords(read fastq.Read) []InfoRecord {
	return []InfoRecord{buildInfoRecord(read, m.rstart, m.rstop, m.errs, m.adapter.Name())}
}

func (m *RemoveBeforeMatch) Errors() int  { return m.errs }
func (m *RemoveBeforeMatch) Matches() int { return m.matches }

func (m *RemoveBeforeMatch) RemovedSequenceLength() int { return m.rstop }

// AdjacentBase is always empty for front-style matches.
func (m *RemoveBeforeMatch) AdjacentBase() string { return "" }

func (m *RemoveBeforeMatch) AdapterName() string { return m.adapter.Name() }

// Wildcards reconstructs the read bases that aligned to each wildcard
// position in the adapter. Only meaningful when the aligned span lengths
// agree (no indels were used in the winning alignment); otherwise it
// returns the empty string, since no base-for-base traceback is retained.
func (m *RemoveBeforeMatch) Wildcards(wildcardChar byte) string {
	return reconstructWildcards(m.adapter.sequence, m.astart, m.astop, m.read, m.rstart, m.rstop, wildcardChar)
}

// RemoveAfterMatch is produced by back-polarity adapters: everything from
// the match onward is discarded.
type RemoveAfterMatch struct {
	adapter       *SingleAdapter
	astart, astop int
	rstart, rstop int
	matches, errs int
	readLen       int
	read          string
}

func newRemoveAfterMatch(a *SingleAdapter, astart, astop, rstart, rstop, matches, errs int, read string) *RemoveAfterMatch {
	return &RemoveAfterMatch{adapter: a, astart: astart, astop: astop, rstart: rstart, rstop: rstop, matches: matches, errs: errs, readLen: len(read), read: read}
}

func (m *RemoveAfterMatch) Trimmed(read string) string { return read[:m.rstart] }

func (m *RemoveAfterMatch) RemainderInterval() (int, int) { return 0, m.rstart }

func (m *RemoveAfterMatch) RetainedAdapterInterval() (int, int) { return 0, m.rstop }

func (m *RemoveAfterMatch) GetInfoRecords(read fastq.Read) []InfoRecord {
	return []InfoRecord{buildInfoRecord(read, m.rstart, m.rstop, m.errs, m.adapter.Name())}
}

func (m *RemoveAfterMatch) Errors() int  { return m.errs }
func (m *RemoveAfterMatch) Matches() int { return m.matches }

func (m *RemoveAfterMatch) RemovedSequenceLength() int { return m.readLen - m.rstart }

func (m *RemoveAfterMatch) AdjacentBase() string {
	if m.rstart == 0 {
		return ""
	}
	return m.read[m.rstart-1 : m.rstart]
}

func (m *RemoveAfterMatch) AdapterName() string { return m.adapter.Name() }

func (m *RemoveAfterMatch) Wildcards(wildcardChar byte) string {
	return reconstructWildcards(m.adapter.sequence, m.astart, m.astop, m.read, m.rstart, m.rstop, wildcardChar)
}

func reconstructWildcards(adapterSeq string, astart, astop int, read string, rstart, rstop int, wildcardChar byte) string {
	if astop-astart != rstop-rstart {
		return ""
	}
	var out []byte
	for i := 0; i < astop-astart; i++ {
		if adapterSeq[astart+i] == wildcardChar {
			out = append(out, read[rstart+i])
		}
	}
	return string(out)
}
