package align

// Where is a bit set describing which ends of the two aligned strings
// (seq1, the adapter, and seq2, the read) may remain unconsumed without
// incurring a penalty. It parametrises the semiglobal aligner returned by
// NewAligner.
type Where uint8

const (
	// StartWithinSeq1 allows a prefix of seq1 to go unconsumed for free.
	StartWithinSeq1 Where = 1 << iota
	// StopWithinSeq1 allows a suffix of seq1 to go unconsumed for free.
	StopWithinSeq1
	// StartWithinSeq2 allows a prefix of seq2 to go unconsumed for free.
	StartWithinSeq2
	// StopWithinSeq2 allows a suffix of seq2 to go unconsumed for free.
	StopWithinSeq2
)

// Semiglobal is the all-flags combination used by "anywhere" matching: both
// strings may dangle at either end.
const Semiglobal = StartWithinSeq1 | StopWithinSeq1 | StartWithinSeq2 | StopWithinSeq2

// The seven canonical polarities from which single-adapter variants build
// their aligners. Names follow the adapter-matching literature: BACK/FRONT
// address 3'/5' adapters, PREFIX/SUFFIX anchor to a read boundary, and the
// NotInternal pair forbid fully-internal matches.
const (
	Back             = StartWithinSeq2 | StopWithinSeq2 | StopWithinSeq1
	Front            = StartWithinSeq2 | StopWithinSeq2 | StartWithinSeq1
	Prefix           = StopWithinSeq2
	Suffix           = StartWithinSeq2
	FrontNotInternal = StartWithinSeq1 | StopWithinSeq2
	BackNotInternal  = StartWithinSeq2 | StopWithinSeq1
	Anywhere         = Semiglobal
)

func (w Where) has(f Where) bool { return w&f != 0 }
