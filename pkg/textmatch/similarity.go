// Package textmatch provides the string-similarity metrics used to decide
// whether two bibliographic records describe the same title.
package textmatch

import (
	"strings"
)

// LevenshteinSimilarity returns 1 minus the normalized edit distance between
// two strings: 0.0 for completely different, 1.0 for identical.
func LevenshteinSimilarity(s1, s2 string) float64 {
	s1 = strings.ToLower(strings.TrimSpace(s1))
	s2 = strings.ToLower(strings.TrimSpace(s2))

	if s1 == s2 {
		return 1.0
	}

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

// TokenJaccard returns the Jaccard similarity of the two strings'
// whitespace-token sets after stop-word removal.
func TokenJaccard(s1, s2 string) float64 {
	set1 := tokenSet(s1)
	set2 := tokenSet(s2)
	return jaccard(set1, set2)
}

// CharJaccard returns the Jaccard similarity of the two strings' character
// sets. Whitespace is ignored.
func CharJaccard(s1, s2 string) float64 {
	set1 := charSet(s1)
	set2 := charSet(s2)
	return jaccard(set1, set2)
}

func jaccard[K comparable](set1, set2 map[K]struct{}) float64 {
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	intersection := 0
	for k := range set1 {
		if _, ok := set2[k]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

func charSet(s string) map[rune]struct{} {
	set := map[rune]struct{}{}
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '\t' {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}

// TitleSimilarity is the maximum of the three independent metrics. Each
// metric catches a different failure mode: Levenshtein handles small typos,
// token Jaccard handles reordered or padded word lists, character Jaccard
// handles gross formatting differences.
func TitleSimilarity(t1, t2 string) float64 {
	sim := LevenshteinSimilarity(t1, t2)
	if s := TokenJaccard(t1, t2); s > sim {
		sim = s
	}
	if s := CharJaccard(t1, t2); s > sim {
		sim = s
	}
	return sim
}
