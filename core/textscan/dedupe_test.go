// core/textscan/dedupe_test.go
package textscan

import "testing"

func TestDedupe(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"aabbcc", "abc"},
		{"abcabc", "abc"},
		{"mississippi", "misp"},
		{"ééa", "éa"},
	}
	for _, tc := range tests {
		if got := Dedupe(tc.in); got != tc.want {
			t.Errorf("Dedupe(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDedupeIdempotent(t *testing.T) {
	for _, s := range []string{"", "abc", "aabbcc", "the quick brown fox"} {
		once := Dedupe(s)
		if twice := Dedupe(once); twice != once {
			t.Errorf("Dedupe not idempotent for %q: %q vs %q", s, once, twice)
		}
		if len(once) > len(s) {
			t.Errorf("Dedupe(%q) grew the input", s)
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"racecar", true},
		{"RaceCar", true},
		{"A man, a plan, a canal: Panama", true},
		{"12321", true},
		{"hello", false},
		{"ab", false},
	}
	for _, tc := range tests {
		if got := IsPalindrome(tc.in); got != tc.want {
			t.Errorf("IsPalindrome(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
