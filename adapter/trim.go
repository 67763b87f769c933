package adapter

import "github.com/grailbio/bio/encoding/fastq"

// TrimResult is the outcome of running one Matchable against one read: the
// residual read after trimming, the info records describing what (if
// anything) was removed, and the Match itself so a caller can feed it into
// a Stats accumulator.
type TrimResult struct {
	Read    fastq.Read
	Records []InfoRecord
	Match   Match
}

// Trim runs m against read.Seq and, on a match, returns the trimmed read
// together with its info records. On no match, Read is the input read
// unchanged, Records is nil, and Match is nil.
func Trim(m Matchable, read fastq.Read) TrimResult {
	match := m.MatchTo(read.Seq)
	if match == nil {
		return TrimResult{Read: read}
	}
	records := match.GetInfoRecords(read)
	trimmedSeq := match.Trimmed(read.Seq)
	out := fastq.Read{ID: read.ID, Unk: read.Unk, Seq: trimmedSeq}
	if read.Qual != "" {
		start, stop := match.RemainderInterval()
		out.Qual = read.Qual[start:stop]
	}
	return TrimResult{Read: out, Records: records, Match: match}
}

// TrimAndCollect runs Trim against every read and folds every resulting
// Match into stats, returning the trimmed reads in input order. Reads with
// no match are passed through untouched and do not update stats.
func TrimAndCollect(m Matchable, reads []fastq.Read, stats *Stats) []fastq.Read {
	out := make([]fastq.Read, len(reads))
	for i, read := range reads {
		result := Trim(m, read)
		out[i] = result.Read
		if result.Match != nil && stats != nil {
			stats.AddMatch(result.Match)
		}
	}
	return out
}
