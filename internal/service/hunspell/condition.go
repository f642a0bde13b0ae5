package hunspell

import (
	"fmt"
	"regexp"
)

// Kind distinguishes prefix and suffix rule groups.
type Kind string

const (
	Prefix Kind = "PFX"
	Suffix Kind = "SFX"
)

// Condition is a compiled affix condition. It is evaluated against the stem
// left after the strip part has been removed, not against the whole word.
type Condition struct {
	raw string
	re  *regexp.Regexp // nil matches any stem
}

// CompileCondition compiles a raw condition token for the given rule kind.
// Suffix conditions anchor at the end of the stem, prefix conditions at the
// start. An empty condition or the literal "0" matches unconditionally.
// The token is a regular-expression fragment (character classes like
// [^aeiou] are common in real .aff files), so a malformed token is an error
// rather than a silently ignored rule.
func CompileCondition(raw string, kind Kind) (Condition, error) {
	if raw == "" || raw == "0" {
		return Condition{raw: raw}, nil
	}

	var pattern string
	if kind == Suffix {
		pattern = raw + "$"
	} else {
		pattern = "^" + raw
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Condition{}, fmt.Errorf("compile affix condition %q: %w", raw, err)
	}
	return Condition{raw: raw, re: re}, nil
}

// Matches reports whether the stem satisfies the condition.
func (c Condition) Matches(stem string) bool {
	if c.re == nil {
		return true
	}
	return c.re.MatchString(stem)
}

func (c Condition) String() string { return c.raw }
