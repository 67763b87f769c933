package adapter

import "github.com/grailbio/base/log"

// WarnDuplicateAdapters logs a warning for every adapter whose name or
// sequence repeats that of an earlier adapter in the list, naming the
// first adapter that used it, matching cutadapt's construction-time
// warn_duplicate_adapters check. It does not mutate or reject
// adapters; callers remain free to proceed with duplicates.
func WarnDuplicateAdapters(adapters []Matchable) {
	seenNames := map[string]int{}
	seenSeqs := map[string]int{}
	for i, a := range adapters {
		name := a.Name()
		if prev, ok := seenNames[name]; ok {
			log.Error.Printf("adapter: adapters %d and %d share the name %q", prev, i, name)
		} else {
			seenNames[name] = i
		}

		seq, ok := sequenceOf(a)
		if !ok {
			continue
		}
		if prev, ok := seenSeqs[seq]; ok {
			log.Error.Printf("adapter: adapters %d and %d share the sequence %q", prev, i, seq)
		} else {
			seenSeqs[seq] = i
		}
	}
}

func sequenceOf(m Matchable) (string, bool) {
	switch a := m.(type) {
	case *SingleAdapter:
		return a.sequence, true
	default:
		return "", false
	}
}
