// core/textscan/distance_test.go
package textscan

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"gumbo", "gambol", 2},
		{"héllo", "hello", 1},
	}
	for _, tc := range tests {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		// Distance is symmetric.
		if got := Levenshtein(tc.b, tc.a); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestLCS(t *testing.T) {
	tests := []struct {
		a, b    string
		wantLen int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"abc", "abc", 3},
		{"ABCBDAB", "BDCABA", 4},
		{"AGGTAB", "GXTXAYB", 4},
		{"abc", "xyz", 0},
	}
	for _, tc := range tests {
		got := LCS(tc.a, tc.b)
		if len([]rune(got)) != tc.wantLen {
			t.Errorf("LCS(%q, %q) = %q, want length %d", tc.a, tc.b, got, tc.wantLen)
		}
		if !isSubsequence(got, tc.a) || !isSubsequence(got, tc.b) {
			t.Errorf("LCS(%q, %q) = %q is not a common subsequence", tc.a, tc.b, got)
		}
	}
}

func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}
