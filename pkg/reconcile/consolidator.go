package reconcile

import (
	"strings"

	"github.com/foliobooks/folio/pkg/records"
	"github.com/foliobooks/folio/pkg/textmatch"
)

// duplicateSet collects normalized records judged to be the same physical
// item reported redundantly. The first member is the set's representative;
// later candidates are compared against it.
type duplicateSet struct {
	isbn    string
	members []records.NormalizedRecord
}

// Consolidate merges near-duplicate records into one authoritative record
// per duplicate set. Grouping is a single left-to-right pass: each record
// joins the first compatible set or starts its own, and earlier decisions
// are never revisited. Two records with different non-empty ISBNs never
// share a set.
func (svc *Service) Consolidate(recs []records.NormalizedRecord) []records.ConsolidatedRecord {
	var sets []*duplicateSet

	for _, rec := range recs {
		placed := false
		for _, set := range sets {
			if !svc.canJoinSet(rec, set) {
				continue
			}
			set.members = append(set.members, rec)
			if set.isbn == "" {
				set.isbn = rec.ISBN
			}
			placed = true
			break
		}
		if !placed {
			sets = append(sets, &duplicateSet{isbn: rec.ISBN, members: []records.NormalizedRecord{rec}})
		}
	}

	out := make([]records.ConsolidatedRecord, 0, len(sets))
	for _, set := range sets {
		out = append(out, consolidateSet(set))
	}

	return out
}

func (svc *Service) canJoinSet(rec records.NormalizedRecord, set *duplicateSet) bool {
	// ISBN identity is authoritative: equal ISBNs always merge, distinct
	// ISBNs never do.
	if rec.ISBN != "" && set.isbn != "" {
		return rec.ISBN == set.isbn
	}

	// At most one side has an ISBN; the similarity test decides.
	return svc.sameItem(rec, set.members[0])
}

// sameItem is the duplicate similarity test: near-identical titles, shared
// or subset author lists, no conflicting bindings, and publication years
// within the configured window.
func (svc *Service) sameItem(a, b records.NormalizedRecord) bool {
	// Explicit edition markers are authoritative: records claiming
	// different editions are never the same item, however similar their
	// titles score. "(4th Edition)" vs "(Third Edition)" differs by only a
	// few characters.
	editionA, okA := svc.explicitEditionNumber(a)
	editionB, okB := svc.explicitEditionNumber(b)
	if okA && okB && editionA != editionB {
		return false
	}

	if textmatch.LevenshteinSimilarity(comparableTitle(a.Title), comparableTitle(b.Title)) < svc.cfg.DuplicateTitleSimilarity {
		return false
	}

	if !authorsCompatible(a.Authors, b.Authors) {
		return false
	}

	// Different non-unknown bindings represent genuinely distinct
	// purchasable items and are never merged away.
	if a.Binding != records.BindingUnknown && b.Binding != records.BindingUnknown && a.Binding != b.Binding {
		return false
	}

	yearA, yearB := a.Year(), b.Year()
	if yearA != 0 && yearB != 0 && abs(yearA-yearB) > svc.cfg.DuplicateYearWindow {
		return false
	}

	return true
}

// explicitEditionNumber parses an explicit edition number from a normalized
// record, with the same precedence the assembler uses: ISBN correction, then
// the edition field, then the title.
func (svc *Service) explicitEditionNumber(rec records.NormalizedRecord) (int, bool) {
	if rec.EditionOverride != nil {
		return *rec.EditionOverride, true
	}
	if number, ok := svc.parseEditionString(rec.Edition); ok {
		return number, true
	}
	return svc.parseEditionString(rec.Title)
}

// comparableTitle applies a light normalization so that punctuation and
// casing differences don't mask duplicates: lowercase, punctuation to
// whitespace, collapsed.
func comparableTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// authorsCompatible reports whether two author lists could describe the same
// item: at least one shared author, or one list (possibly empty) is a subset
// of the other.
func authorsCompatible(a, b []string) bool {
	setA := lowerSet(a)
	setB := lowerSet(b)

	shared := 0
	for name := range setA {
		if _, ok := setB[name]; ok {
			shared++
		}
	}
	if shared > 0 {
		return true
	}

	return shared == len(setA) || shared == len(setB)
}

func lowerSet(names []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// completenessScore ranks a record by how much usable metadata it carries.
func completenessScore(rec records.NormalizedRecord) int {
	score := 0
	if rec.Title != "" {
		score += 2
	}
	if rec.Subtitle != "" {
		score++
	}
	score += len(rec.Authors)
	if rec.Description != "" {
		score += 2
	}
	if rec.Publisher != "" {
		score++
	}
	if rec.PublishedDate != "" {
		score++
	}
	if rec.PageCount > 0 {
		score++
	}
	return score
}

// consolidateSet reduces a duplicate set to one authoritative record: the
// longest title, first non-empty subtitle, longest description, union of all
// authors, earliest publication date, and everything else from the most
// metadata-complete member.
func consolidateSet(set *duplicateSet) records.ConsolidatedRecord {
	base := set.members[0]
	baseScore := completenessScore(base)
	for _, member := range set.members[1:] {
		if score := completenessScore(member); score > baseScore {
			base = member
			baseScore = score
		}
	}

	out := records.ConsolidatedRecord{
		ID:              base.ID,
		Title:           base.Title,
		Subtitle:        base.Subtitle,
		ISBN:            set.isbn,
		Binding:         base.Binding,
		Publisher:       base.Publisher,
		Language:        base.Language,
		PublishedDate:   base.PublishedDate,
		Description:     base.Description,
		PageCount:       base.PageCount,
		Edition:         base.Edition,
		EditionOverride: base.EditionOverride,
		CoverURL:        base.CoverURL,
	}

	seen := map[string]struct{}{}
	for _, member := range set.members {
		out.MergedIDs = append(out.MergedIDs, member.ID)

		if len(member.Title) > len(out.Title) {
			out.Title = member.Title
		}
		if out.Subtitle == "" && member.Subtitle != "" {
			out.Subtitle = member.Subtitle
		}
		if len(member.Description) > len(out.Description) {
			out.Description = member.Description
		}
		for _, author := range member.Authors {
			key := strings.ToLower(author)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out.Authors = append(out.Authors, author)
		}
		if year := member.Year(); year != 0 {
			if current := records.ParseYear(out.PublishedDate); current == 0 || year < current {
				out.PublishedDate = member.PublishedDate
			}
		}
		// The set's binding is whatever non-unknown binding any member
		// reported; the no-conflict rule guarantees there is at most one.
		if out.Binding == records.BindingUnknown && member.Binding != records.BindingUnknown {
			out.Binding = member.Binding
		}
		if out.EditionOverride == nil && member.EditionOverride != nil {
			out.EditionOverride = member.EditionOverride
		}
	}

	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
