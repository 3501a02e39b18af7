// Package sortname generates bibliographic sort keys for titles and person
// names, following the usual library conventions.
package sortname

import (
	"strings"
)

var titleArticles = []string{"The", "A", "An"}

// particles stay attached to the surname:
// "Ludwig van Beethoven" -> "van Beethoven, Ludwig".
var particles = map[string]struct{}{
	"van": {}, "von": {}, "de": {}, "da": {}, "di": {}, "du": {}, "del": {}, "la": {}, "le": {},
}

// ForTitle moves a leading article to the end: "The Hobbit" -> "Hobbit, The".
func ForTitle(title string) string {
	title = strings.TrimSpace(title)
	for _, article := range titleArticles {
		prefix := article + " "
		if len(title) > len(prefix) && strings.EqualFold(title[:len(prefix)], prefix) {
			rest := strings.TrimSpace(title[len(prefix):])
			if rest != "" {
				return rest + ", " + title[:len(article)]
			}
		}
	}
	return title
}

// ForPerson converts a display name to "Last, First Middle" form. Name
// particles stay attached to the surname: "Guy de Maupassant" ->
// "de Maupassant, Guy".
func ForPerson(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return strings.TrimSpace(name)
	}

	last := len(words) - 1
	for last > 0 {
		if _, ok := particles[strings.ToLower(words[last-1])]; !ok {
			break
		}
		last--
	}
	if last == 0 {
		last = len(words) - 1
	}

	return strings.Join(words[last:], " ") + ", " + strings.Join(words[:last], " ")
}
