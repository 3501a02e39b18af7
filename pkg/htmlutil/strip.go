// Package htmlutil cleans HTML fragments out of provider-supplied text.
// Several book-metadata providers return descriptions as HTML snippets.
package htmlutil

import (
	"regexp"
	"strings"
)

var tagRE = regexp.MustCompile(`<[^>]*>`)

var entities = []struct {
	entity string
	char   string
}{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", "\""},
	{"&#39;", "'"},
	{"&apos;", "'"},
	{"&mdash;", "—"},
	{"&ndash;", "–"},
	{"&hellip;", "…"},
	{"&rsquo;", "’"},
	{"&lsquo;", "‘"},
	{"&rdquo;", "”"},
	{"&ldquo;", "“"},
}

// StripTags removes HTML tags from a description snippet, converts break
// tags to spaces, decodes the common named entities, and collapses the
// resulting whitespace.
func StripTags(s string) string {
	if s == "" {
		return ""
	}

	for _, br := range []string{"<br>", "<br/>", "<br />", "</p>", "</li>"} {
		s = strings.ReplaceAll(s, br, " ")
	}
	s = tagRE.ReplaceAllString(s, "")

	for _, e := range entities {
		s = strings.ReplaceAll(s, e.entity, e.char)
	}

	return strings.Join(strings.Fields(s), " ")
}
