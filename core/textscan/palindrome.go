// core/textscan/palindrome.go
package textscan

import "unicode"

// IsPalindrome reports whether text reads the same forwards and backwards
// after dropping non-alphanumeric characters and folding case.
// "A man, a plan, a canal: Panama" is a palindrome; the empty string is too.
func IsPalindrome(text string) bool {
	var cleaned []rune
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned = append(cleaned, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}
