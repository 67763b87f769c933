// Package align provides the approximate semiglobal matching primitive
// adapters are located with: a dynamic-programming aligner parametrised
// by which ends of the two strings may dangle for free (Where), plus
// edit/Hamming neighbourhood enumeration used by the indexed adapter
// fast path.
package align
