package textmatch

import (
	"regexp"
	"strings"
)

// stopWords are removed before token-level comparison. Deliberately small:
// only words that carry no discriminating power in book titles.
var stopWords = map[string]struct{}{
	"a":    {},
	"an":   {},
	"the":  {},
	"and":  {},
	"or":   {},
	"of":   {},
	"in":   {},
	"on":   {},
	"for":  {},
	"to":   {},
	"with": {},
}

var (
	parentheticalRE = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	editionMarkerRE = regexp.MustCompile(`\b(?:\d{1,2}(?:st|nd|rd|th)?\s+ed(?:ition|\.)?|ed(?:ition|\.)?\s+\d{1,2}|(?:first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\s+ed(?:ition|\.)?|(?:revised|updated|expanded)\s+ed(?:ition|\.)?)\b`)
	punctuationRE   = regexp.MustCompile(`[^a-z0-9\s]`)
)

// NormalizeTitle deep-normalizes a title for clustering: lowercases, strips
// parenthetical and bracketed content, strips edition markers, collapses
// punctuation to whitespace, and removes a single leading article.
func NormalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = parentheticalRE.ReplaceAllString(t, " ")
	t = editionMarkerRE.ReplaceAllString(t, " ")
	t = punctuationRE.ReplaceAllString(t, " ")
	t = strings.Join(strings.Fields(t), " ")

	for _, article := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(t, article) {
			t = t[len(article):]
			break
		}
	}

	return t
}

// SignificantWords returns the title's tokens with stop words and stray
// one/two-letter fragments removed, in original order.
func SignificantWords(title string) []string {
	var words []string
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if len(tok) <= 2 {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// CoreMatch reports whether two normalized titles share a core: either their
// first significant words match pairwise (up to three), or at least 70% of
// the smaller title's significant-word set appears in the larger one's.
func CoreMatch(t1, t2 string) bool {
	w1 := SignificantWords(t1)
	w2 := SignificantWords(t2)
	if len(w1) == 0 || len(w2) == 0 {
		return false
	}

	n := len(w1)
	if len(w2) < n {
		n = len(w2)
	}
	if n > 3 {
		n = 3
	}
	prefix := true
	for i := 0; i < n; i++ {
		if w1[i] != w2[i] {
			prefix = false
			break
		}
	}
	if prefix {
		return true
	}

	smaller := smallerSetSize(w1, w2)
	return float64(SharedWordCount(t1, t2))/float64(smaller) >= 0.7
}

// SharedWordCount returns how many distinct significant words the two titles
// have in common.
func SharedWordCount(t1, t2 string) int {
	set := map[string]struct{}{}
	for _, w := range SignificantWords(t1) {
		set[w] = struct{}{}
	}
	shared := map[string]struct{}{}
	for _, w := range SignificantWords(t2) {
		if _, ok := set[w]; ok {
			shared[w] = struct{}{}
		}
	}
	return len(shared)
}

func smallerSetSize(w1, w2 []string) int {
	set1 := map[string]struct{}{}
	for _, w := range w1 {
		set1[w] = struct{}{}
	}
	set2 := map[string]struct{}{}
	for _, w := range w2 {
		set2[w] = struct{}{}
	}
	if len(set1) < len(set2) {
		return len(set1)
	}
	return len(set2)
}
