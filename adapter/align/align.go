// Package align implements the approximate semiglobal string matching
// primitive that the adapter package builds on: locating a short "seq1"
// (the adapter) inside a longer "seq2" (the read), with configurable
// end-anchoring and an indel toggle.
//
// There is no external dependency in this module's graph that provides
// this primitive (the teacher repo's bio packages align reads to a
// reference genome via BAM/CIGAR, a different problem), so it is
// implemented here, in the style of the DP aligners this pack's other
// example repos use (row-major cost matrices, with per-cell origin
// tracking in place of an explicit traceback) and
// grounded on util.Levenshtein's matrix bookkeeping for the no-indel-
// toggle, cost-accumulation shape.
package align

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// prohibitiveIndelCost disables indels: any path using one becomes so
// expensive that it can never survive a sane max-error-rate check.
const prohibitiveIndelCost = 1 << 20

// NoIndelsCost is the indelCost to pass to NewAligner to forbid indels:
// large enough that no gapped path can survive any realistic max error
// rate.
const NoIndelsCost = prohibitiveIndelCost

// Location is the result of Locate: the half-open adapter interval
// [AStart,AStop) aligned to the read interval [RStart,RStop), with the
// number of exactly-matching adapter positions and the number of errors
// (substitutions plus indels) in between.
type Location struct {
	AStart, AStop int
	RStart, RStop int
	Matches       int
	Errors        int
}

// Aligner locates a fixed reference string (seq1) inside query strings
// (seq2) under a configured end-anchoring policy. An Aligner is not safe
// for concurrent use: Locate reuses internal scratch buffers across calls.
type Aligner struct {
	seq1          string
	where         Where
	maxErrorRate  float64
	minOverlap    int
	indelCost     int
	wildcardRef   bool // adapter_wildcards
	wildcardQuery bool // read_wildcards
	debug         bool

	// cost retains the last Locate call's DP matrix when debug is set.
	cost [][]int
}

// NewAligner builds an Aligner that locates seq1 within query sequences
// under the given end-anchoring flags. indelCost is 1 to allow indels at
// unit cost, or any sufficiently large sentinel to forbid them in
// practice (errors accrued via an indel will virtually always fail a
// max-error-rate check before being reported).
func NewAligner(seq1 string, maxErrorRate float64, where Where, wildcardRef, wildcardQuery bool, indelCost, minOverlap int) (*Aligner, error) {
	if len(seq1) == 0 {
		return nil, errors.New("align: seq1 must not be empty")
	}
	if maxErrorRate < 0 || maxErrorRate > 1 {
		return nil, errors.Errorf("align: max error rate %v out of [0,1]", maxErrorRate)
	}
	if minOverlap < 1 || minOverlap > len(seq1) {
		return nil, errors.Errorf("align: min overlap %d out of [1,%d]", minOverlap, len(seq1))
	}
	return &Aligner{
		seq1:          seq1,
		where:         where,
		maxErrorRate:  maxErrorRate,
		minOverlap:    minOverlap,
		indelCost:     indelCost,
		wildcardRef:   wildcardRef,
		wildcardQuery: wildcardQuery,
	}, nil
}

// EffectiveLength is the informative length of the reference sequence,
// used by statistics compatibility checks (adapter.Stats.Merge).
func (a *Aligner) EffectiveLength() int { return len(a.seq1) }

// EnableDebug turns on retention of the last DP matrix for inspection via
// DPMatrix.
func (a *Aligner) EnableDebug() { a.debug = true }

// DPMatrix renders the cost matrix computed by the most recent Locate
// call, in the row/column style of util.Levenshtein's internal matrix
// formatting. Only meaningful after EnableDebug and a Locate call.
func (a *Aligner) DPMatrix() string {
	if a.cost == nil {
		return ""
	}
	maxWidth := 1
	for _, row := range a.cost {
		for _, v := range row {
			if v >= prohibitiveIndelCost {
				continue
			}
			if w := len(strconv.Itoa(v)); w > maxWidth {
				maxWidth = w
			}
		}
	}
	var b strings.Builder
	b.WriteByte('\n')
	for _, row := range a.cost {
		parts := make([]string, len(row))
		for j, v := range row {
			if v >= prohibitiveIndelCost {
				parts[j] = strings.Repeat("#", maxWidth)
			} else {
				parts[j] = fmt.Sprintf("%0*d", maxWidth, v)
			}
		}
		b.WriteString(strings.Join(parts, " | "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Locate finds the best alignment of the aligner's reference sequence
// inside seq2, subject to the end-anchoring flags, minimum overlap, and
// maximum error rate supplied at construction. It returns false if no
// admissible alignment exists.
//
// Complexity is O(len(seq1) * len(seq2)): a single dynamic-programming
// pass fills a cost matrix augmented, at every cell, with the start
// coordinates of the optimal path reaching it, so no separate traceback
// per candidate end point is required.
func (a *Aligner) Locate(seq2 string) (Location, bool) {
	m, n := len(a.seq1), len(seq2)
	startFree1 := a.where.has(StartWithinSeq1)
	startFree2 := a.where.has(StartWithinSeq2)
	stopFree1 := a.where.has(StopWithinSeq1)
	stopFree2 := a.where.has(StopWithinSeq2)

	cost := make2D(m+1, n+1)
	si := make2D(m+1, n+1)
	sj := make2D(m+1, n+1)

	cost[0][0] = 0
	si[0][0] = 0
	sj[0][0] = 0
	for i := 1; i <= m; i++ {
		if startFree1 {
			cost[i][0] = 0
			si[i][0] = i
			sj[i][0] = 0
		} else {
			cost[i][0] = i * a.indelCost
			si[i][0] = 0
			sj[i][0] = 0
		}
	}
	for j := 1; j <= n; j++ {
		if startFree2 {
			cost[0][j] = 0
			si[0][j] = 0
			sj[0][j] = j
		} else {
			cost[0][j] = j * a.indelCost
			si[0][j] = 0
			sj[0][j] = 0
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sub := 0
			if !basesMatch(a.seq1[i-1], seq2[j-1], a.wildcardRef, a.wildcardQuery) {
				sub = 1
			}
			bestCost := cost[i-1][j-1] + sub
			bestSI, bestSJ := si[i-1][j-1], sj[i-1][j-1]

			if v := cost[i-1][j] + a.indelCost; v < bestCost {
				bestCost, bestSI, bestSJ = v, si[i-1][j], sj[i-1][j]
			}
			if v := cost[i][j-1] + a.indelCost; v < bestCost {
				bestCost, bestSI, bestSJ = v, si[i][j-1], sj[i][j-1]
			}
			cost[i][j] = bestCost
			si[i][j] = bestSI
			sj[i][j] = bestSJ
		}
	}

	if a.debug {
		a.cost = cost
	}

	iEnds := []int{m}
	if stopFree1 {
		iEnds = make([]int, m+1)
		for i := range iEnds {
			iEnds[i] = i
		}
	}
	jEnds := []int{n}
	if stopFree2 {
		jEnds = make([]int, n+1)
		for j := range jEnds {
			jEnds[j] = j
		}
	}

	var (
		best    Location
		haveAny bool
	)
	for _, i := range iEnds {
		for _, j := range jEnds {
			astart, rstart := si[i][j], sj[i][j]
			length := i - astart
			if length < a.minOverlap {
				continue
			}
			errs := cost[i][j]
			if errs >= prohibitiveIndelCost {
				continue
			}
			if float64(errs) > a.maxErrorRate*float64(length) {
				continue
			}
			matches := length - errs
			cand := Location{AStart: astart, AStop: i, RStart: rstart, RStop: j, Matches: matches, Errors: errs}
			if !haveAny || better(cand, best) {
				best = cand
				haveAny = true
			}
		}
	}
	return best, haveAny
}

// better reports whether cand beats incumbent under the shared tie-break
// policy used throughout the adapter package: more matches wins; ties go
// to fewer errors.
func better(cand, incumbent Location) bool {
	if cand.Matches != incumbent.Matches {
		return cand.Matches > incumbent.Matches
	}
	return cand.Errors < incumbent.Errors
}

func make2D(rows, cols int) [][]int {
	flat := make([]int, rows*cols)
	out := make([][]int, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}
