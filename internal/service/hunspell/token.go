package hunspell

import "unicode"

// IsValidToken reports whether a word may enter the vocabulary: at least
// two runes, letters only. Unicode letters are accepted so the same check
// works across languages.
func IsValidToken(word string) bool {
	n := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n >= 2
}
