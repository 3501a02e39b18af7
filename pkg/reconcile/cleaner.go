package reconcile

import (
	"strings"
	"time"

	"github.com/foliobooks/folio/pkg/records"
)

// englishVariants are the language codes we accept. A missing language code
// is accepted; providers frequently omit it for English titles.
var englishVariants = map[string]struct{}{
	"en":      {},
	"eng":     {},
	"en-us":   {},
	"en-gb":   {},
	"en-ca":   {},
	"english": {},
}

// foreignTitleFragments catch translated listings that slip through with no
// language code set.
var foreignTitleFragments = []string{
	"edición",
	"édition",
	"ausgabe",
	"editie",
	"edizione",
}

// Clean filters out records that are clearly invalid or out of scope: wrong
// language, implausible publication year, or titles carrying embedded-author
// and bracket-metadata artifacts. Records are never mutated, only dropped.
func (svc *Service) Clean(recs []records.RawRecord) []records.RawRecord {
	maxYear := time.Now().Year() + svc.cfg.MaxYearsAhead

	kept := make([]records.RawRecord, 0, len(recs))
	for _, rec := range recs {
		if strings.TrimSpace(rec.Title) == "" {
			continue
		}
		if rec.Language != "" {
			if _, ok := englishVariants[strings.ToLower(rec.Language)]; !ok {
				continue
			}
		}
		if strings.Contains(rec.Title, "--by") || strings.Contains(rec.Title, "[") {
			continue
		}
		if year := rec.Year(); year != 0 && (year < svc.cfg.MinPublicationYear || year > maxYear) {
			continue
		}
		if containsForeignFragment(rec.Title) {
			continue
		}
		kept = append(kept, rec)
	}

	return kept
}

func containsForeignFragment(title string) bool {
	lower := strings.ToLower(title)
	for _, fragment := range foreignTitleFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
