// core/dna/validate.go
package dna

// Validate reports whether every character of seq is one of A/T/G/C in either
// case. The empty sequence is vacuously valid. Anything else, including
// whitespace, ambiguity codes like N, or non-ASCII characters, invalidates
// the whole sequence. The input is never mutated or normalized.
func Validate(seq string) bool {
	for _, r := range seq {
		if !IsNucleotide(r) {
			return false
		}
	}
	return true
}
