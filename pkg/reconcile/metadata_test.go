package reconcile

import (
	"testing"

	"github.com/foliobooks/folio/pkg/config"
	"github.com/foliobooks/folio/pkg/records"
	"github.com/stretchr/testify/assert"
)

func TestBestMetadataPrefersHardcoverTier(t *testing.T) {
	svc := NewService(config.Default())

	meta := svc.BestMetadata([]records.ConsolidatedRecord{
		{
			Binding:       records.BindingEbook,
			PublishedDate: "2019-08-06",
			PageCount:     368,
			Publisher:     "Wiley",
			Description:   "A very thorough description of the book.",
			CoverURL:      "https://covers.example.com/ebook.jpg",
		},
		{
			Binding:       records.BindingHardcover,
			PublishedDate: "2019-08-06",
			Publisher:     "Wiley",
		},
	})

	// The hardcover tier has a record with a positive score, so it wins even
	// though the ebook record scores higher overall.
	assert.Equal(t, "", meta.CoverURL)
	assert.Equal(t, "Wiley", meta.Publisher)
	assert.Equal(t, 0, meta.PageCount)
}

func TestBestMetadataTierWalkSkipsEmptyTiers(t *testing.T) {
	svc := NewService(config.Default())

	meta := svc.BestMetadata([]records.ConsolidatedRecord{
		{Binding: records.BindingAudiobook, PublishedDate: "2019", Description: "Narrated edition."},
		{Binding: records.BindingEbook, PublishedDate: "2019", PageCount: 368},
	})

	// No hardcover or paperback records: the ebook tier is the first with a
	// scoring record.
	assert.Equal(t, 368, meta.PageCount)
	assert.Equal(t, "", meta.Description)
}

func TestBestMetadataHighestScoreWithinTier(t *testing.T) {
	svc := NewService(config.Default())

	meta := svc.BestMetadata([]records.ConsolidatedRecord{
		{Binding: records.BindingHardcover, Publisher: "Wiley"},
		{Binding: records.BindingHardcover, PublishedDate: "2019", PageCount: 368, Description: "Full record."},
	})

	assert.Equal(t, "2019", meta.PublishedDate)
	assert.Equal(t, 368, meta.PageCount)
}

func TestBestMetadataFallbackAcrossBindings(t *testing.T) {
	svc := NewService(config.Default())

	// Only a pass-through binding carries metadata; no tier qualifies, so
	// the best-scoring record overall is used.
	meta := svc.BestMetadata([]records.ConsolidatedRecord{
		{Binding: "kindle edition", PublishedDate: "2019", Publisher: "Wiley"},
		{Binding: records.BindingUnknown},
	})

	assert.Equal(t, "2019", meta.PublishedDate)
	assert.Equal(t, "Wiley", meta.Publisher)
}

func TestBestMetadataEmpty(t *testing.T) {
	svc := NewService(config.Default())
	assert.Equal(t, records.PartialMetadata{}, svc.BestMetadata(nil))
}
