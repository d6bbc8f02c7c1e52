// core/dna/gc.go
package dna

// GCContent returns the percentage of G and C bases in seq, matched
// case-insensitively, in [0,100]. The empty sequence yields 0.0 rather than
// dividing by zero.
//
// seq need not have passed Validate: characters outside the GC set, valid
// bases or not, count only toward the denominator (the character length), so
// a sequence with stray characters still yields a defined percentage.
func GCContent(seq string) float64 {
	if seq == "" {
		return 0.0
	}
	length, gc := 0, 0
	for _, r := range seq {
		length++
		if IsGC(r) {
			gc++
		}
	}
	return float64(gc) / float64(length) * 100.0
}
