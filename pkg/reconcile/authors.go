package reconcile

import (
	"regexp"
	"strings"
)

// knownConcatenations are author strings some providers report with two names
// run together without punctuation. Checked before the generic pattern so
// that names the pattern can't split still come apart correctly.
var knownConcatenations = map[string][]string{
	"brad feldjason mendelson": {"Brad Feld", "Jason Mendelson"},
	"brad felddavid cohen":     {"Brad Feld", "David Cohen"},
	"brad feldamy batchelor":   {"Brad Feld", "Amy Batchelor"},
	"jason mendelsonbrad feld": {"Jason Mendelson", "Brad Feld"},
	"sean wisebrad feld":       {"Sean Wise", "Brad Feld"},
	"david cohenbrad feld":     {"David Cohen", "Brad Feld"},
}

// runTogetherRE matches exactly two capitalized two-word names concatenated
// without punctuation, e.g. "Brad FeldJason Mendelson".
var runTogetherRE = regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+)([A-Z][a-z]+ [A-Z][a-z]+)$`)

// generationalSuffixes are stripped from the end of author names so that
// "Steve Blank Jr." and "Steve Blank" dedupe to one author.
var generationalSuffixes = []string{"Jr.", "Jr", "Sr.", "Sr", "III", "IV"}

// parseAuthors splits raw author strings into individual canonical names:
// comma lists are split apart, run-together names are separated, generational
// suffixes are stripped, and the result is deduplicated case-insensitively.
// Stray initials of two characters or fewer are discarded.
func parseAuthors(raw []string) []string {
	var names []string
	for _, s := range raw {
		names = append(names, splitAuthorString(s)...)
	}

	var out []string
	seen := map[string]struct{}{}
	for _, name := range names {
		name = stripGenerationalSuffix(strings.TrimSpace(name))
		if len(name) <= 2 || isGenerationalSuffix(name) {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}

	return out
}

func splitAuthorString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if names, ok := knownConcatenations[strings.ToLower(s)]; ok {
		return names
	}

	if strings.Contains(s, ",") {
		var parts []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		return parts
	}

	if m := runTogetherRE.FindStringSubmatch(s); m != nil {
		return []string{m[1], m[2]}
	}

	return []string{s}
}

// isGenerationalSuffix catches suffixes split off as their own part by the
// comma rule, e.g. "Davis, Jr." -> ["Davis", "Jr."].
func isGenerationalSuffix(name string) bool {
	for _, suffix := range generationalSuffixes {
		if name == suffix {
			return true
		}
	}
	return false
}

func stripGenerationalSuffix(name string) string {
	name = strings.TrimSuffix(name, ",")
	for _, suffix := range generationalSuffixes {
		if !strings.HasSuffix(name, " "+suffix) {
			continue
		}
		trimmed := strings.TrimSpace(strings.TrimSuffix(name, suffix))
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, ","))
		if trimmed != "" {
			return trimmed
		}
	}
	return name
}
