package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		s1       string
		s2       string
		expected float64
	}{
		{
			name:     "identical",
			s1:       "venture deals",
			s2:       "venture deals",
			expected: 1.0,
		},
		{
			name:     "case insensitive",
			s1:       "Venture Deals",
			s2:       "venture deals",
			expected: 1.0,
		},
		{
			name:     "both empty",
			s1:       "",
			s2:       "",
			expected: 1.0,
		},
		{
			name:     "one empty",
			s1:       "abc",
			s2:       "",
			expected: 0.0,
		},
		{
			name:     "single substitution",
			s1:       "kitten",
			s2:       "mitten",
			expected: 1.0 - 1.0/6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LevenshteinSimilarity(tt.s1, tt.s2), 0.0001)
		})
	}
}

func TestTokenJaccard(t *testing.T) {
	// Stop words are removed before comparison, so only "startup" and
	// "manual"/"guide" discriminate.
	assert.InDelta(t, 1.0, TokenJaccard("the startup manual", "startup manual"), 0.0001)
	assert.InDelta(t, 1.0/3.0, TokenJaccard("startup manual", "startup guide"), 0.0001)
	assert.Equal(t, 0.0, TokenJaccard("venture deals", "startup life"))
}

func TestCharJaccard(t *testing.T) {
	assert.InDelta(t, 1.0, CharJaccard("abc", "cba"), 0.0001)
	assert.Equal(t, 0.0, CharJaccard("abc", "xyz"))
	assert.InDelta(t, 1.0, CharJaccard("a b c", "abc"), 0.0001)
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "leading article stripped",
			title:    "The Startup Owner's Manual",
			expected: "startup owner s manual",
		},
		{
			name:     "parenthetical edition stripped",
			title:    "Venture Deals (4th Edition)",
			expected: "venture deals",
		},
		{
			name:     "inline edition marker stripped",
			title:    "Venture Deals - Fourth Edition",
			expected: "venture deals",
		},
		{
			name:     "bracket content stripped",
			title:    "Do More Faster [Paperback]",
			expected: "do more faster",
		},
		{
			name:     "whitespace collapsed",
			title:    "  Startup   Life  ",
			expected: "startup life",
		},
		{
			name:     "abbreviated edition marker",
			title:    "Startup Opportunities, 2nd ed.",
			expected: "startup opportunities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTitle(tt.title))
		})
	}
}

func TestCoreMatch(t *testing.T) {
	assert.True(t, CoreMatch("venture deals smarter than your lawyer", "venture deals"))
	assert.True(t, CoreMatch("startup owner s manual", "startup owner s manual strategy guide"))
	assert.False(t, CoreMatch("venture deals", "do more faster"))
	assert.False(t, CoreMatch("", "venture deals"))
}

func TestTitleSimilarity(t *testing.T) {
	// The max of the three metrics: token overlap saves reordered titles
	// that edit distance would punish.
	sim := TitleSimilarity("startup owner s manual", "manual startup owner s")
	assert.InDelta(t, 1.0, sim, 0.0001)

	assert.Less(t, TitleSimilarity("venture deals", "do more faster"), 0.5)
}
