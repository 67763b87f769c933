package adapter

import "github.com/grailbio/bio/encoding/fastq"

// LinkedAdapter sequentially composes a front adapter and a back adapter:
// the front adapter is tried against the full read, the back adapter
// against whatever the front match left behind.
type LinkedAdapter struct {
	front         *SingleAdapter
	back          *SingleAdapter
	frontRequired bool
	backRequired  bool
	name          string
}

// NewLinkedAdapter builds a linked adapter from a front and back
// SingleAdapter. The linked adapter's name is propagated to the front
// adapter so statistics keyed by name line up.
func NewLinkedAdapter(front, back *SingleAdapter, frontRequired, backRequired bool, opts ...Option) *LinkedAdapter {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	name := resolveName(cfg.Name)
	front.name = name
	return &LinkedAdapter{front: front, back: back, frontRequired: frontRequired, backRequired: backRequired, name: name}
}

func (l *LinkedAdapter) Name() string { return l.name }

func (l *LinkedAdapter) EnableDebug() {
	l.front.EnableDebug()
	l.back.EnableDebug()
}

// MatchTo attempts the front adapter against read, then the back adapter
// against the residual left by a front match (or the full read, if no
// front match was required or found).
func (l *LinkedAdapter) MatchTo(read string) Match {
	var front Match
	residual := read
	if m := l.front.MatchTo(read); m != nil {
		front = m
		start, stop := m.RemainderInterval()
		residual = read[start:stop]
	} else if l.frontRequired {
		return nil
	}

	var back Match
	if m := l.back.MatchTo(residual); m != nil {
		back = m
	} else if l.backRequired {
		return nil
	}

	if front == nil && back == nil {
		return nil
	}
	return &LinkedMatch{front: front, back: back, readLen: len(read), name: l.name}
}

// LinkedMatch composes an optional front match and an optional back
// match; at least one is always present.
type LinkedMatch struct {
	front   Match
	back    Match
	readLen int
	name    string // the linked adapter's name, used in info records
}

// Front returns the front component, or nil if absent.
func (lm *LinkedMatch) Front() Match { return lm.front }

// Back returns the back component, or nil if absent.
func (lm *LinkedMatch) Back() Match { return lm.back }

func (lm *LinkedMatch) Trimmed(read string) string {
	cur := read
	if lm.front != nil {
		cur = lm.front.Trimmed(read)
	}
	if lm.back != nil {
		cur = lm.back.Trimmed(cur)
	}
	return cur
}

func (lm *LinkedMatch) RemainderInterval() (int, int) {
	offset, lower, upper := 0, 0, lm.readLen
	if lm.front != nil {
		lower, upper = lm.front.RemainderInterval()
		offset = lower
	}
	if lm.back != nil {
		start, stop := lm.back.RemainderInterval()
		lower, upper = offset+start, offset+stop
	}
	return lower, upper
}

// RetainedAdapterInterval follows spec's open-question resolution: the
// lower bound comes from the front match if present (else 0); the upper
// bound comes from the back match, translated by the front's residual
// offset, if present (else the full read length).
func (lm *LinkedMatch) RetainedAdapterInterval() (int, int) {
	offset := 0
	lower := 0
	upper := lm.readLen
	if lm.front != nil {
		lower, _ = lm.front.RetainedAdapterInterval()
		offset, _ = lm.front.RemainderInterval()
	}
	if lm.back != nil {
		_, backHigh := lm.back.RetainedAdapterInterval()
		upper = offset + backHigh
	}
	return lower, upper
}

func (lm *LinkedMatch) GetInfoRecords(read fastq.Read) []InfoRecord {
	var recs []InfoRecord
	cur := read
	if lm.front != nil {
		recs = append(recs, suffixRecordNames(lm.front.GetInfoRecords(cur), lm.name+";1")...)
		start, stop := lm.front.RemainderInterval()
		cur = sliceRead(cur, start, stop)
	}
	if lm.back != nil {
		recs = append(recs, suffixRecordNames(lm.back.GetInfoRecords(cur), lm.name+";2")...)
	}
	return recs
}

// Errors is the aggregate error count, summed over present components.
func (lm *LinkedMatch) Errors() int {
	total := 0
	if lm.front != nil {
		total += lm.front.Errors()
	}
	if lm.back != nil {
		total += lm.back.Errors()
	}
	return total
}

// Matches is the aggregate match count, summed over present components.
func (lm *LinkedMatch) Matches() int {
	total := 0
	if lm.front != nil {
		total += lm.front.Matches()
	}
	if lm.back != nil {
		total += lm.back.Matches()
	}
	return total
}

func (lm *LinkedMatch) RemovedSequenceLength() int {
	total := 0
	if lm.front != nil {
		total += lm.front.RemovedSequenceLength()
	}
	if lm.back != nil {
		total += lm.back.RemovedSequenceLength()
	}
	return total
}

func (lm *LinkedMatch) AdjacentBase() string {
	if lm.back != nil {
		return lm.back.AdjacentBase()
	}
	return ""
}

func (lm *LinkedMatch) AdapterName() string {
	if lm.front != nil {
		return lm.front.AdapterName()
	}
	return lm.back.AdapterName()
}

func suffixRecordNames(recs []InfoRecord, name string) []InfoRecord {
	out := make([]InfoRecord, len(recs))
	for i, r := range recs {
		r.AdapterName = name
		out[i] = r
	}
	return out
}

func sliceRead(read fastq.Read, start, stop int) fastq.Read {
	out := fastq.Read{ID: read.ID, Unk: read.Unk, Seq: read.Seq[start:stop]}
	if read.Qual != "" {
		out.Qual = read.Qual[start:stop]
	}
	return out
}
