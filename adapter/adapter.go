package adapter

import (
	"github.com/grailbio/bio/adapter/align"
)

// AdapterKind discriminates the seven single-adapter variants. Rather than a
// class per variant, SingleAdapter carries one of these and branches on
// it the few places variants actually differ: flag selection, match
// polarity, and the spec string.
type AdapterKind uint8

const (
	FrontKind AdapterKind = iota
	BackKind
	AnywhereKind
	NonInternalFrontKind
	NonInternalBackKind
	PrefixKind
	SuffixKind
)

// Config collects the construction options shared by every single-adapter
// variant. The zero value is not meaningful; use DefaultConfig.
type Config struct {
	Name          string
	MaxErrorRate  float64
	MinOverlap    int
	ReadWildcards bool
	Indels        bool
	ForceAnywhere bool
}

// DefaultConfig matches cutadapt's historical defaults.
func DefaultConfig() Config {
	return Config{MaxErrorRate: 0.1, MinOverlap: 3, Indels: true}
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithName assigns a stable user-visible adapter name. Unnamed adapters
// (the default) receive the next process-wide integer name.
func WithName(name string) Option { return func(c *Config) { c.Name = name } }

// WithMaxErrorRate sets the maximum error rate. Values >= 1 are
// interpreted, per spec, as an absolute error count and divided by the
// sequence length at construction time.
func WithMaxErrorRate(rate float64) Option { return func(c *Config) { c.MaxErrorRate = rate } }

// WithMinOverlap sets the minimum aligned adapter length, clamped to the
// sequence length at construction time.
func WithMinOverlap(n int) Option { return func(c *Config) { c.MinOverlap = n } }

// WithReadWildcards enables IUPAC wildcard interpretation on the read
// side of the alignment.
func WithReadWildcards(b bool) Option { return func(c *Config) { c.ReadWildcards = b } }

// WithIndels toggles whether the aligner may use insertions/deletions.
func WithIndels(b bool) Option { return func(c *Config) { c.Indels = b } }

// WithForceAnywhere builds the aligner with ANYWHERE flags while keeping
// front/back polarity classification and reporting. Only meaningful for
// FrontKind/BackKind; ignored otherwise.
func WithForceAnywhere() Option { return func(c *Config) { c.ForceAnywhere = true } }

// SingleAdapter is one non-composite adapter: a sequence, its
// configuration, and the aligner built from them.
type SingleAdapter struct {
	kind             AdapterKind
	sequence         string
	name             string
	maxErrorRate     float64
	minOverlap       int
	readWildcards    bool
	adapterWildcards bool
	indels           bool

	aligner        *align.Aligner
	prefixComparer *align.PrefixComparer
	suffixComparer *align.SuffixComparer
}

func newSingleAdapter(kind AdapterKind, sequence string, opts []Option) (*SingleAdapter, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(sequence) == 0 {
		return nil, emptySequenceError()
	}
	seq := normalizeSequence(sequence)
	if err := validateIUPAC(seq); err != nil {
		return nil, err
	}

	maxErrorRate := cfg.MaxErrorRate
	if maxErrorRate >= 1 {
		maxErrorRate = maxErrorRate / float64(len(seq))
	}
	minOverlap := cfg.MinOverlap
	if minOverlap < 1 {
		minOverlap = 1
	}
	if minOverlap > len(seq) {
		minOverlap = len(seq)
	}

	a := &SingleAdapter{
		kind:             kind,
		sequence:         seq,
		name:             resolveName(cfg.Name),
		maxErrorRate:     maxErrorRate,
		minOverlap:       minOverlap,
		readWildcards:    cfg.ReadWildcards,
		adapterWildcards: needsAdapterWildcards(seq),
		indels:           cfg.Indels,
	}

	switch kind {
	case PrefixKind, SuffixKind:
		a.minOverlap = len(seq)
	}

	where := flagsForKind(kind, cfg.ForceAnywhere)
	indelCost := 1
	if !cfg.Indels {
		indelCost = align.NoIndelsCost
	}

	if (kind == PrefixKind || kind == SuffixKind) && !cfg.Indels {
		if kind == PrefixKind {
			a.prefixComparer = align.NewPrefixComparer(seq, a.adapterWildcards, a.readWildcards)
		} else {
			a.suffixComparer = align.NewSuffixComparer(seq, a.adapterWildcards, a.readWildcards)
		}
		return a, nil
	}

	aligner, err := align.NewAligner(seq, maxErrorRate, where, a.adapterWildcards, a.readWildcards, indelCost, a.minOverlap)
	if err != nil {
		return nil, err
	}
	a.aligner = aligner
	return a, nil
}

func flagsForKind(kind AdapterKind, forceAnywhere bool) align.Where {
	if forceAnywhere && (kind == FrontKind || kind == BackKind) {
		return align.Anywhere
	}
	switch kind {
	case FrontKind:
		return align.Front
	case BackKind:
		return align.Back
	case AnywhereKind:
		return align.Anywhere
	case NonInternalFrontKind:
		return align.FrontNotInternal
	case NonInternalBackKind:
		return align.BackNotInternal
	case PrefixKind:
		return align.Prefix
	case SuffixKind:
		return align.Suffix
	default:
		return align.Anywhere
	}
}

// Name returns the adapter's stable name.
func (a *SingleAdapter) Name() string { return a.name }

// EffectiveLength is the aligner-reported informative length, used for
// statistics compatibility checks.
func (a *SingleAdapter) EffectiveLength() int { return len(a.sequence) }

// EnableDebug turns on DP matrix retention on the underlying aligner, if
// any (the no-indel comparer short-circuit path has none).
func (a *SingleAdapter) EnableDebug() {
	if a.aligner != nil {
		a.aligner.EnableDebug()
	}
}

// MatchTo locates the adapter within sequence and returns the
// appropriately polarised Match, or nil.
func (a *SingleAdapter) MatchTo(sequence string) Match {
	if a.prefixComparer != nil {
		errs, ok := a.prefixComparer.Compare(sequence)
		if !ok {
			return nil
		}
		if float64(errs) > a.maxErrorRate*float64(len(a.sequence)) {
			return nil
		}
		matches := len(a.sequence) - errs
		return newRemoveBeforeMatch(a, 0, len(a.sequence), 0, len(a.sequence), matches, errs, sequence)
	}
	if a.suffixComparer != nil {
		errs, ok := a.suffixComparer.Compare(sequence)
		if !ok {
			return nil
		}
		if float64(errs) > a.maxErrorRate*float64(len(a.sequence)) {
			return nil
		}
		matches := len(a.sequence) - errs
		rstart := len(sequence) - len(a.sequence)
		return newRemoveAfterMatch(a, 0, len(a.sequence), rstart, len(sequence), matches, errs, sequence)
	}

	loc, ok := a.aligner.Locate(sequence)
	if !ok {
		return nil
	}
	return a.buildMatch(loc, sequence)
}

func (a *SingleAdapter) buildMatch(loc align.Location, sequence string) Match {
	switch a.kind {
	case FrontKind, NonInternalFrontKind, PrefixKind:
		return newRemoveBeforeMatch(a, loc.AStart, loc.AStop, loc.RStart, loc.RStop, loc.Matches, loc.Errors, sequence)
	case BackKind, NonInternalBackKind, SuffixKind:
		return newRemoveAfterMatch(a, loc.AStart, loc.AStop, loc.RStart, loc.RStop, loc.Matches, loc.Errors, sequence)
	case AnywhereKind:
		if loc.RStart == 0 {
			return newRemoveBeforeMatch(a, loc.AStart, loc.AStop, loc.RStart, loc.RStop, loc.Matches, loc.Errors, sequence)
		}
		return newRemoveAfterMatch(a, loc.AStart, loc.AStop, loc.RStart, loc.RStop, loc.Matches, loc.Errors, sequence)
	default:
		return newRemoveAfterMatch(a, loc.AStart, loc.AStop, loc.RStart, loc.RStop, loc.Matches, loc.Errors, sequence)
	}
}

// Spec renders the stable user-visible spec string for this adapter,
// per spec.md §4.1.
func (a *SingleAdapter) Spec() string {
	switch a.kind {
	case FrontKind:
		return a.sequence + "..."
	case BackKind:
		return a.sequence
	case AnywhereKind:
		return "..." + a.sequence + "..."
	case NonInternalFrontKind:
		return "X" + a.sequence + "..."
	case NonInternalBackKind:
		return a.sequence + "X"
	case PrefixKind:
		return "^" + a.sequence + "..."
	case SuffixKind:
		return a.sequence + "$"
	default:
		return a.sequence
	}
}
