package scorer

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// particleMatcher finds name-particle substrings inside a term.
type particleMatcher struct {
	matcher *ahocorasick.Matcher
}

func newParticleMatcher(particles []string) *particleMatcher {
	if len(particles) == 0 {
		particles = defaultNameParticles
	}
	lowered := make([]string, 0, len(particles))
	for _, p := range particles {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			lowered = append(lowered, p)
		}
	}
	return &particleMatcher{matcher: ahocorasick.NewStringMatcher(lowered)}
}

func (m *particleMatcher) Contains(term string) bool {
	return len(m.matcher.Match([]byte(strings.ToLower(term)))) > 0
}
