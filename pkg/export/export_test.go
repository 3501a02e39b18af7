package export

import (
	"testing"

	"github.com/foliobooks/folio/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intptr(n int) *int { return &n }

func TestFromGroup(t *testing.T) {
	group := records.EditionGroup{
		EditionNumber:   2,
		EditionType:     "Second Edition",
		PublicationYear: intptr(2012),
		Records: []records.ConsolidatedRecord{
			{
				ID:        "h1",
				Title:     "The Startup Owner's Manual",
				Authors:   []string{"Steve Blank", "Bob Dorf"},
				ISBN:      "9781119690689",
				Binding:   records.BindingHardcover,
				Publisher: "Wiley",
				PageCount: 608,
				Language:  "en",
			},
			{
				ID:       "e1",
				Title:    "The Startup Owner's Manual: The Step-by-Step Guide",
				Subtitle: "The Step-by-Step Guide for Building a Great Company",
				Authors:  []string{"Steve Blank"},
				ISBN:     "9781119690725",
				Binding:  records.BindingEbook,
				CoverURL: "https://covers.example.com/9781119690725.jpg",
			},
		},
	}

	edition := FromGroup(group)

	assert.Equal(t, 2, edition.EditionNumber)
	assert.Equal(t, "Second Edition", edition.EditionType)
	require.NotNil(t, edition.PublicationYear)
	assert.Equal(t, 2012, *edition.PublicationYear)

	// Longest member title wins, and the sort title drops its article.
	assert.Equal(t, "The Startup Owner's Manual: The Step-by-Step Guide", edition.Title)
	assert.Equal(t, "Startup Owner's Manual: The Step-by-Step Guide, The", edition.SortTitle)
	assert.Equal(t, "The Step-by-Step Guide for Building a Great Company", edition.Subtitle)

	// Author union, first occurrence order, with sort names.
	require.Len(t, edition.Authors, 2)
	assert.Equal(t, Author{Name: "Steve Blank", SortName: "Blank, Steve"}, edition.Authors[0])
	assert.Equal(t, Author{Name: "Bob Dorf", SortName: "Dorf, Bob"}, edition.Authors[1])

	// One binding per member record, in member order.
	require.Len(t, edition.Bindings, 2)
	assert.Equal(t, "9781119690689", edition.Bindings[0].ISBN)
	assert.Equal(t, records.BindingHardcover, edition.Bindings[0].Binding)
	assert.Equal(t, 608, edition.Bindings[0].PageCount)
	assert.Equal(t, records.BindingEbook, edition.Bindings[1].Binding)
	assert.Equal(t, "https://covers.example.com/9781119690725.jpg", edition.Bindings[1].CoverURL)
}

func TestFromGroups(t *testing.T) {
	groups := []records.EditionGroup{
		{EditionNumber: 2, Records: []records.ConsolidatedRecord{{ID: "a", Title: "Second"}}},
		{EditionNumber: 1, Records: []records.ConsolidatedRecord{{ID: "b", Title: "First"}}},
	}

	editions := FromGroups(groups)
	require.Len(t, editions, 2)
	assert.Equal(t, 2, editions[0].EditionNumber)
	assert.Equal(t, 1, editions[1].EditionNumber)

	assert.Empty(t, FromGroups(nil))
}
