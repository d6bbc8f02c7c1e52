// core/dna/classify.go

// Package dna scans nucleotide sequences over the four-base alphabet
// {A,T,G,C}, compared case-insensitively.
package dna

// IsNucleotide reports whether r is one of the four DNA bases, in either case.
func IsNucleotide(r rune) bool {
	switch r {
	case 'A', 'T', 'G', 'C', 'a', 't', 'g', 'c':
		return true
	}
	return false
}

// IsGC reports whether r is guanine or cytosine, in either case.
func IsGC(r rune) bool {
	switch r {
	case 'G', 'C', 'g', 'c':
		return true
	}
	return false
}
