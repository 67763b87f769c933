package align

// iupacMatches maps an IUPAC ambiguity code to the set of concrete bases
// it is compatible with, mirroring the table used throughout the
// cutadapt-style adapter-trimming literature.
var iupacMatches = map[byte]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'U': "T",
	'R': "AG",
	'Y': "CT",
	'S': "GC",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
	'X': "ACGT",
}

// basesMatch reports whether reference base a and query base b are
// compatible, optionally treating IUPAC wildcard codes in either
// position as matching any of the bases they stand for.
func basesMatch(a, b byte, wildcardRef, wildcardQuery bool) bool {
	if a == b {
		return true
	}
	if wildcardRef {
		if set, ok := iupacMatches[a]; ok && containsByte(set, b) {
			return true
		}
	}
	if wildcardQuery {
		if set, ok := iupacMatches[b]; ok && containsByte(set, a) {
			return true
		}
	}
	return false
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
