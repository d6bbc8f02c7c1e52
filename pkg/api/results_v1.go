// pkg/api/results_v1.go
package api

// Stable JSON/JSONL schemas for scan results. Keep fields, names, and types
// stable; add new fields only with ",omitempty".

// ReverseV1 is the result of reversing one input.
type ReverseV1 struct {
	Source   string `json:"source"`
	Reversed string `json:"reversed"`
}

// CountV1 is the result of counting one character in one input.
type CountV1 struct {
	Source string `json:"source"`
	Char   string `json:"char"`
	Count  int    `json:"count"`
}

// FindV1 is the result of a pattern scan over one input sequence.
// Positions are character offsets, strictly increasing, overlaps included.
type FindV1 struct {
	Source    string `json:"source"`
	Record    string `json:"record,omitempty"`
	Pattern   string `json:"pattern"`
	Positions []int  `json:"positions"`
	Count     int    `json:"count"`
}

// ValidateV1 is the result of DNA validation over one input sequence.
type ValidateV1 struct {
	Source string `json:"source"`
	Record string `json:"record,omitempty"`
	Valid  bool   `json:"valid"`
	Length int    `json:"length"`
}

// GCV1 is the GC-content of one input sequence. Length is in characters.
type GCV1 struct {
	Source    string  `json:"source"`
	Record    string  `json:"record,omitempty"`
	GCPercent float64 `json:"gc_percent"`
	Length    int     `json:"length"`
}

// FreqV1 is one row of a per-character frequency report.
type FreqV1 struct {
	Source string `json:"source"`
	Char   string `json:"char"`
	Count  int    `json:"count"`
}

// DedupeV1 is the result of removing repeated characters from one input.
type DedupeV1 struct {
	Source  string `json:"source"`
	Deduped string `json:"deduped"`
}

// PalindromeV1 is the result of a palindrome check on one input.
type PalindromeV1 struct {
	Source     string `json:"source"`
	Palindrome bool   `json:"palindrome"`
}

// DistanceV1 compares two inputs by edit distance and common subsequence.
type DistanceV1 struct {
	A           string `json:"a"`
	B           string `json:"b"`
	Levenshtein int    `json:"levenshtein"`
	LCS         string `json:"lcs"`
	LCSLength   int    `json:"lcs_length"`
}
