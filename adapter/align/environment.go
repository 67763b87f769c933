package align

// Variant is one member of an edit or Hamming environment: a string
// reachable from the original sequence within the generating budget,
// tagged with the minimal number of edits needed to reach it.
type Variant struct {
	Sequence string
	Errors   int
}

const bases = "ACGT"

// EditEnvironment enumerates every string reachable from seq by at most
// k substitutions, insertions, and deletions, each tagged with its
// minimal edit distance from seq. It is the BFS analogue of cutadapt's
// edit_environment: generating by layer (rather than by fixed edit
// count) guarantees each string is recorded at the smallest distance at
// which it is reachable, since BFS visits distance-d strings before any
// distance-(d+1) string that collapses onto them.
func EditEnvironment(seq string, k int) []Variant {
	if k <= 0 {
		return []Variant{{Sequence: seq, Errors: 0}}
	}
	visited := map[string]int{seq: 0}
	frontier := []string{seq}
	for d := 1; d <= k; d++ {
		var next []string
		for _, s := range frontier {
			for _, cand := range editNeighbors(s) {
				if _, ok := visited[cand]; ok {
					continue
				}
				visited[cand] = d
				next = append(next, cand)
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return toVariants(visited)
}

// HammingEnvironment enumerates every string reachable from seq by at
// most k substitutions only (no indels), tagged with minimal Hamming
// distance. Used for the indexed-adapter fast path, where every
// neighbourhood string is forced to share seq's length.
func HammingEnvironment(seq string, k int) []Variant {
	if k <= 0 {
		return []Variant{{Sequence: seq, Errors: 0}}
	}
	visited := map[string]int{seq: 0}
	frontier := []string{seq}
	for d := 1; d <= k; d++ {
		var next []string
		for _, s := range frontier {
			for _, cand := range substitutionNeighbors(s) {
				if _, ok := visited[cand]; ok {
					continue
				}
				visited[cand] = d
				next = append(next, cand)
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return toVariants(visited)
}

func toVariants(visited map[string]int) []Variant {
	out := make([]Variant, 0, len(visited))
	for s, d := range visited {
		out = append(out, Variant{Sequence: s, Errors: d})
	}
	return out
}

func substitutionNeighbors(s string) []string {
	var out []string
	buf := []byte(s)
	for i := 0; i < len(s); i++ {
		orig := buf[i]
		for _, b := range []byte(bases) {
			if b == orig {
				continue
			}
			buf[i] = b
			out = append(out, string(buf))
		}
		buf[i] = orig
	}
	return out
}

func editNeighbors(s string) []string {
	out := substitutionNeighbors(s)

	// Deletions: remove one base.
	for i := 0; i < len(s); i++ {
		out = append(out, s[:i]+s[i+1:])
	}

	// Insertions: insert one base at every position, including the ends.
	for i := 0; i <= len(s); i++ {
		for _, b := range []byte(bases) {
			out = append(out, s[:i]+string(b)+s[i:])
		}
	}

	return out
}
