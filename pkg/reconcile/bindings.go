package reconcile

import (
	"strings"

	"github.com/foliobooks/folio/pkg/records"
)

// exactBindings maps the binding strings providers actually send to the
// canonical vocabulary. Checked before the substring fallback.
var exactBindings = map[string]string{
	"hardcover":               records.BindingHardcover,
	"hardback":                records.BindingHardcover,
	"library binding":         records.BindingHardcover,
	"cloth":                   records.BindingHardcover,
	"paperback":               records.BindingPaperback,
	"softcover":               records.BindingPaperback,
	"trade paperback":         records.BindingPaperback,
	"mass market paperback":   records.BindingPaperback,
	"perfect paperback":       records.BindingPaperback,
	"ebook":                   records.BindingEbook,
	"e-book":                  records.BindingEbook,
	"epub":                    records.BindingEbook,
	"pdf":                     records.BindingEbook,
	"audiobook":               records.BindingAudiobook,
	"audio cd":                records.BindingAudiobook,
	"mp3 cd":                  records.BindingAudiobook,
	"audio cassette":          records.BindingAudiobook,
	"audible audiobook":       records.BindingAudiobook,
	"preloaded digital audio": records.BindingAudiobook,
	"board book":              records.BindingBoardBook,
	"spiral bound":            records.BindingSpiralBound,
	"spiral-bound":            records.BindingSpiralBound,
	"unknown binding":         records.BindingUnknown,
}

// audioHints disambiguate "electronic resource", which catalogs use for both
// downloadable audio and ebooks.
var audioHints = []string{"audio", "mp3", "unabridged", "narrator"}

var substringBindings = []struct {
	fragment string
	binding  string
}{
	{"hardcover", records.BindingHardcover},
	{"hardback", records.BindingHardcover},
	{"paperback", records.BindingPaperback},
	{"softcover", records.BindingPaperback},
	{"audio", records.BindingAudiobook},
	{"board book", records.BindingBoardBook},
	{"spiral", records.BindingSpiralBound},
	{"ebook", records.BindingEbook},
	{"e-book", records.BindingEbook},
}

// canonicalBinding maps a free-text binding or print-type string to the
// canonical vocabulary. Unmapped strings pass through unchanged as their
// lowercase form so that later stages can still use them as-is.
func canonicalBinding(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return records.BindingUnknown
	}

	if binding, ok := exactBindings[s]; ok {
		return binding
	}

	if strings.Contains(s, "electronic resource") {
		for _, hint := range audioHints {
			if strings.Contains(s, hint) {
				return records.BindingAudiobook
			}
		}
		return records.BindingEbook
	}

	for _, sub := range substringBindings {
		if strings.Contains(s, sub.fragment) {
			return sub.binding
		}
	}

	return s
}

// isAudiobook reports whether a canonical or pass-through binding string
// describes an audio format.
func isAudiobook(binding string) bool {
	if binding == records.BindingAudiobook {
		return true
	}
	lower := strings.ToLower(binding)
	for _, hint := range []string{"audio", "mp3", "cd", "audible"} {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
