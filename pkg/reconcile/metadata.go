package reconcile

import (
	"github.com/foliobooks/folio/pkg/records"
)

// metadataTiers is the binding order walked when picking an edition group's
// descriptive metadata. Hardcover listings tend to carry the most complete
// catalog data, audiobooks the least.
var metadataTiers = []string{
	records.BindingHardcover,
	records.BindingPaperback,
	records.BindingEbook,
	records.BindingAudiobook,
}

// metadataScore ranks a record as a descriptive-metadata source.
func metadataScore(rec records.ConsolidatedRecord) int {
	score := 0
	if rec.PublishedDate != "" {
		score += 3
	}
	if rec.PageCount > 0 {
		score += 2
	}
	if rec.Publisher != "" {
		score++
	}
	if rec.Description != "" {
		score++
	}
	if rec.CoverURL != "" {
		score++
	}
	return score
}

// BestMetadata picks the best-available descriptive metadata among a group's
// member records: the highest-scoring record in the first binding tier that
// has any record with a positive score, falling back to the single best
// record across all bindings.
func (svc *Service) BestMetadata(recs []records.ConsolidatedRecord) records.PartialMetadata {
	byBinding := map[string][]records.ConsolidatedRecord{}
	for _, rec := range recs {
		byBinding[rec.Binding] = append(byBinding[rec.Binding], rec)
	}

	for _, tier := range metadataTiers {
		if best, ok := bestScoring(byBinding[tier]); ok {
			return partialMetadata(best)
		}
	}

	if best, ok := bestScoring(recs); ok {
		return partialMetadata(best)
	}
	if len(recs) > 0 {
		return partialMetadata(recs[0])
	}

	return records.PartialMetadata{}
}

// bestScoring returns the highest-scoring record, requiring a positive
// score. Ties keep the earlier record.
func bestScoring(recs []records.ConsolidatedRecord) (records.ConsolidatedRecord, bool) {
	var best records.ConsolidatedRecord
	bestScore := 0
	for _, rec := range recs {
		if score := metadataScore(rec); score > bestScore {
			best = rec
			bestScore = score
		}
	}
	return best, bestScore > 0
}

func partialMetadata(rec records.ConsolidatedRecord) records.PartialMetadata {
	return records.PartialMetadata{
		PublishedDate: rec.PublishedDate,
		PageCount:     rec.PageCount,
		Publisher:     rec.Publisher,
		Description:   rec.Description,
		CoverURL:      rec.CoverURL,
		Language:      rec.Language,
	}
}
