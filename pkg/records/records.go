package records

import (
	"regexp"
	"strconv"
	"strings"
)

// Canonical binding vocabulary. Free-text binding strings from providers are
// mapped onto these during normalization; strings that don't map pass through
// lowercased.
const (
	BindingHardcover   = "hardcover"
	BindingPaperback   = "paperback"
	BindingEbook       = "ebook"
	BindingAudiobook   = "audiobook"
	BindingBoardBook   = "board book"
	BindingSpiralBound = "spiral bound"
	BindingUnknown     = "unknown"
)

// Lower priority means we trust its metadata more when picking the
// authoritative record for an edition.
const (
	BindingHardcoverPriority = iota
	BindingPaperbackPriority
	BindingEbookPriority
	BindingKindlePriority
	BindingAudiobookPriority
	BindingUnknownPriority
)

var bindingPriority = map[string]int{
	BindingHardcover: BindingHardcoverPriority,
	BindingPaperback: BindingPaperbackPriority,
	BindingEbook:     BindingEbookPriority,
	BindingAudiobook: BindingAudiobookPriority,
	BindingUnknown:   BindingUnknownPriority,
}

// BindingPriority returns the authority rank of a binding string. Unmapped
// pass-through strings that mention kindle rank between ebook and audiobook;
// everything else unrecognized ranks with unknown.
func BindingPriority(binding string) int {
	if p, ok := bindingPriority[binding]; ok {
		return p
	}
	if strings.Contains(strings.ToLower(binding), "kindle") {
		return BindingKindlePriority
	}
	return BindingUnknownPriority
}

// RawRecord is a single bibliographic record as reported by an upstream
// book-metadata provider. It is never mutated; every pipeline stage either
// filters it or derives a new record from it.
type RawRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	Binding       string   `json:"binding,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	Language      string   `json:"language,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Edition       string   `json:"edition,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
}

// NormalizedRecord is a RawRecord after per-record cleanup: authors split
// into individual canonical names, title whitespace collapsed, binding mapped
// to the canonical vocabulary, and any ISBN-keyed manual correction applied.
type NormalizedRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	Binding       string   `json:"binding,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	Language      string   `json:"language,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Edition       string   `json:"edition,omitempty"`
	// EditionOverride is set when an ISBN correction pins this record to a
	// specific edition number regardless of what its text fields claim.
	EditionOverride *int   `json:"edition_override,omitempty"`
	CoverURL        string `json:"cover_url,omitempty"`
}

// ConsolidatedRecord is the single authoritative record synthesized from a
// set of near-duplicate normalized records.
type ConsolidatedRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Authors         []string `json:"authors,omitempty"`
	ISBN            string   `json:"isbn,omitempty"`
	Binding         string   `json:"binding,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	Language        string   `json:"language,omitempty"`
	PublishedDate   string   `json:"published_date,omitempty"`
	Description     string   `json:"description,omitempty"`
	PageCount       int      `json:"page_count,omitempty"`
	Edition         string   `json:"edition,omitempty"`
	EditionOverride *int     `json:"edition_override,omitempty"`
	CoverURL        string   `json:"cover_url,omitempty"`
	// MergedIDs lists the IDs of every raw record folded into this one,
	// including the base record itself.
	MergedIDs []string `json:"merged_ids,omitempty"`
}

// WorkCluster is a set of consolidated records believed to describe the same
// literary work across its editions and bindings. The representative title is
// the deep-normalized title of the first record placed in the cluster; later
// records are compared against it, never against each other.
type WorkCluster struct {
	Representative string               `json:"representative"`
	Records        []ConsolidatedRecord `json:"records"`
}

// PartialMetadata is the best-available descriptive metadata for an edition
// group, selected across its member bindings.
type PartialMetadata struct {
	PublishedDate string `json:"published_date,omitempty"`
	PageCount     int    `json:"page_count,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	Description   string `json:"description,omitempty"`
	CoverURL      string `json:"cover_url,omitempty"`
	Language      string `json:"language,omitempty"`
}

// EditionGroup is one edition of a work together with all of its bindings.
type EditionGroup struct {
	EditionNumber   int                  `json:"edition_number"`
	EditionType     string               `json:"edition_type,omitempty"`
	PublicationYear *int                 `json:"publication_year,omitempty"`
	Records         []ConsolidatedRecord `json:"records"`
	Metadata        PartialMetadata      `json:"metadata"`
}

var yearRE = regexp.MustCompile(`\b(\d{4})\b`)

// ParseYear extracts a four-digit publication year from a free-form date
// string. Returns 0 when no year is present.
func ParseYear(date string) int {
	m := yearRE.FindStringSubmatch(date)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return year
}

// Year returns the record's publication year, or 0 if unknown.
func (r RawRecord) Year() int { return ParseYear(r.PublishedDate) }

// Year returns the record's publication year, or 0 if unknown.
func (r NormalizedRecord) Year() int { return ParseYear(r.PublishedDate) }

// Year returns the record's publication year, or 0 if unknown.
func (r ConsolidatedRecord) Year() int { return ParseYear(r.PublishedDate) }
