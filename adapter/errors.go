package adapter

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Kind classifies an Error for programmatic matching, independent of the
// message text errors.E produces.
type Kind uint8

const (
	// KindInvalidCharacter: an adapter sequence contained a byte outside the
	// IUPAC alphabet.
	KindInvalidCharacter Kind = iota + 1
	// KindEmptySequence: an adapter sequence was empty.
	KindEmptySequence
	// KindEmptyAdapterList: an indexed set was built with no member adapters.
	KindEmptyAdapterList
	// KindIndexRejection: a candidate adapter failed the indexed-set
	// acceptance predicate.
	KindIndexRejection
	// KindStatisticsMismatch: a Stats merge was attempted across
	// incompatible configurations.
	KindStatisticsMismatch
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid character"
	case KindEmptySequence:
		return "empty sequence"
	case KindEmptyAdapterList:
		return "empty adapter list"
	case KindIndexRejection:
		return "index rejection"
	case KindStatisticsMismatch:
		return "statistics mismatch"
	default:
		return "unknown"
	}
}

// Error wraps the message produced by github.com/grailbio/base/errors with
// a Kind, so callers can branch on the failure category without parsing
// the message.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, args ...interface{}) *Error {
	return &Error{Kind: kind, err: errors.E(args...)}
}

func invalidCharacterError(seq string, pos int, c byte) *Error {
	hint := ""
	if c == 'I' {
		hint = " (did you mean N?)"
	}
	return newError(KindInvalidCharacter, fmt.Sprintf("adapter sequence %q: invalid character %q at position %d%s", seq, c, pos, hint))
}

func emptySequenceError() *Error {
	return newError(KindEmptySequence, "adapter sequence must not be empty")
}

func emptyAdapterListError() *Error {
	return newError(KindEmptyAdapterList, "indexed adapter set requires at least one adapter")
}

func indexRejectionError(name string, reason string) *Error {
	return newError(KindIndexRejection, fmt.Sprintf("adapter %s rejected from indexed set: %s", name, reason))
}

func statisticsMismatchError(reason string) *Error {
	return newError(KindStatisticsMismatch, fmt.Sprintf("cannot merge statistics: %s", reason))
}
