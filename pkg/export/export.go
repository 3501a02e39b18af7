// Package export converts the engine's edition groups into the normalized
// edition + binding record shapes the persistence collaborator stores.
package export

import (
	"github.com/foliobooks/folio/pkg/records"
	"github.com/foliobooks/folio/pkg/sortname"
)

// Edition is the edition-level storage record.
type Edition struct {
	EditionNumber   int       `json:"edition_number"`
	EditionType     string    `json:"edition_type,omitempty"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	Title           string    `json:"title"`
	SortTitle       string    `json:"sort_title"`
	Subtitle        string    `json:"subtitle,omitempty"`
	Authors         []Author  `json:"authors,omitempty"`
	Bindings        []Binding `json:"bindings"`
}

// Author pairs a display name with its library-style sort form.
type Author struct {
	Name     string `json:"name"`
	SortName string `json:"sort_name"`
}

// Binding is the binding-level storage record: one purchasable form of the
// edition.
type Binding struct {
	ISBN        string `json:"isbn,omitempty"`
	Binding     string `json:"binding"`
	Publisher   string `json:"publisher,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	Description string `json:"description,omitempty"`
	PageCount   int    `json:"page_count,omitempty"`
	Language    string `json:"language,omitempty"`
}

// FromGroup maps one edition group to its storage shape. Edition-level
// descriptive fields come from the group's selected metadata; the title and
// author list come from the longest title and the union of member authors.
func FromGroup(group records.EditionGroup) Edition {
	edition := Edition{
		EditionNumber:   group.EditionNumber,
		EditionType:     group.EditionType,
		PublicationYear: group.PublicationYear,
	}

	seen := map[string]struct{}{}
	for _, rec := range group.Records {
		if len(rec.Title) > len(edition.Title) {
			edition.Title = rec.Title
		}
		if edition.Subtitle == "" {
			edition.Subtitle = rec.Subtitle
		}
		for _, name := range rec.Authors {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			edition.Authors = append(edition.Authors, Author{
				Name:     name,
				SortName: sortname.ForPerson(name),
			})
		}

		edition.Bindings = append(edition.Bindings, Binding{
			ISBN:        rec.ISBN,
			Binding:     rec.Binding,
			Publisher:   rec.Publisher,
			CoverURL:    rec.CoverURL,
			Description: rec.Description,
			PageCount:   rec.PageCount,
			Language:    rec.Language,
		})
	}
	edition.SortTitle = sortname.ForTitle(edition.Title)

	return edition
}

// FromGroups maps every edition group, preserving order.
func FromGroups(groups []records.EditionGroup) []Edition {
	editions := make([]Edition, 0, len(groups))
	for _, group := range groups {
		editions = append(editions, FromGroup(group))
	}
	return editions
}
