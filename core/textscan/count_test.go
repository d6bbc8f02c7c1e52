// core/textscan/count_test.go
package textscan

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCountChar(t *testing.T) {
	tests := []struct {
		name string
		text string
		char string
		want int
	}{
		{"simple", "hello world", "l", 3},
		{"absent", "hello", "z", 0},
		{"empty text", "", "a", 0},
		{"case sensitive lower", "Hello", "h", 0},
		{"case sensitive upper", "Hello", "H", 1},
		{"all same", "aaaa", "a", 4},
		{"multibyte char", "naïve naïve", "ï", 2},
		{"space", "a b c", " ", 2},
	}
	for _, tc := range tests {
		got, err := CountChar(tc.text, tc.char)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: CountChar(%q, %q) = %d, want %d", tc.name, tc.text, tc.char, got, tc.want)
		}
	}
}

func TestCountCharInvalidArgument(t *testing.T) {
	for _, char := range []string{"", "ab", "hello", "ïï"} {
		if _, err := CountChar("hello", char); !errors.Is(err, ErrNotSingleChar) {
			t.Errorf("CountChar(_, %q): err = %v, want ErrNotSingleChar", char, err)
		}
	}
}

func TestCountCharBound(t *testing.T) {
	text := "mississippi"
	n, err := CountChar(text, "s")
	if err != nil {
		t.Fatal(err)
	}
	if n > len(text) {
		t.Fatalf("count %d exceeds length %d", n, len(text))
	}
}

func TestCountCharLargeInput(t *testing.T) {
	in := strings.Repeat("ab", 500_000) // 10^6 chars
	start := time.Now()
	n, err := CountChar(in, "a")
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d > time.Second {
		t.Fatalf("CountChar over 1M chars took %v", d)
	}
	if n != 500_000 {
		t.Fatalf("got %d, want 500000", n)
	}
}

func TestCountAll(t *testing.T) {
	got := CountAll("abracadabra")
	want := map[rune]int{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	if len(got) != len(want) {
		t.Fatalf("got %d distinct chars, want %d", len(got), len(want))
	}
	for r, n := range want {
		if got[r] != n {
			t.Errorf("CountAll[%q] = %d, want %d", r, got[r], n)
		}
	}
	if n := len(CountAll("")); n != 0 {
		t.Errorf("CountAll(\"\") has %d entries, want 0", n)
	}
}
