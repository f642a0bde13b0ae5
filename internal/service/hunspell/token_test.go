package hunspell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidToken(t *testing.T) {
	cases := []struct {
		word  string
		valid bool
	}{
		{"an", true},
		{"café", true},
		{"привет", true},
		{"a", false},
		{"", false},
		{"a1", false},
		{"don't", false},
		{"two words", false},
		{"naïve", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidToken(tc.word), "word %q", tc.word)
	}
}

func TestIsValidTokenFilterIsIdempotent(t *testing.T) {
	words := []string{"an", "a", "café", "a1", "running", "x"}

	once := make([]string, 0, len(words))
	for _, w := range words {
		if IsValidToken(w) {
			once = append(once, w)
		}
	}
	twice := make([]string, 0, len(once))
	for _, w := range once {
		if IsValidToken(w) {
			twice = append(twice, w)
		}
	}
	assert.Equal(t, once, twice)
}
