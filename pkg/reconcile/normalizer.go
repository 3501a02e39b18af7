package reconcile

import (
	"strings"

	"github.com/foliobooks/folio/pkg/htmlutil"
	"github.com/foliobooks/folio/pkg/records"
)

// Normalize derives a NormalizedRecord from a raw one: ISBN-keyed manual
// corrections are applied first, then authors are split into individual
// canonical names, the title's whitespace is collapsed, the binding is mapped
// to the canonical vocabulary, and the description is stripped of HTML.
func (svc *Service) Normalize(rec records.RawRecord) records.NormalizedRecord {
	binding := rec.Binding
	var editionOverride *int

	if override, ok := svc.cfg.Overrides[rec.ISBN]; ok && rec.ISBN != "" {
		if override.Binding != "" {
			binding = override.Binding
		}
		if override.Edition > 0 {
			edition := override.Edition
			editionOverride = &edition
		}
	}

	return records.NormalizedRecord{
		ID:              rec.ID,
		Title:           collapseWhitespace(rec.Title),
		Subtitle:        collapseWhitespace(rec.Subtitle),
		Authors:         parseAuthors(rec.Authors),
		ISBN:            strings.TrimSpace(rec.ISBN),
		Binding:         canonicalBinding(binding),
		Publisher:       collapseWhitespace(rec.Publisher),
		Language:        strings.ToLower(strings.TrimSpace(rec.Language)),
		PublishedDate:   strings.TrimSpace(rec.PublishedDate),
		Description:     htmlutil.StripTags(rec.Description),
		PageCount:       rec.PageCount,
		Edition:         collapseWhitespace(rec.Edition),
		EditionOverride: editionOverride,
		CoverURL:        strings.TrimSpace(rec.CoverURL),
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
