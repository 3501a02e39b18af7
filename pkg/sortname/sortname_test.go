package sortname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "leading the", title: "The Hobbit", expected: "Hobbit, The"},
		{name: "leading a", title: "A Tale of Two Cities", expected: "Tale of Two Cities, A"},
		{name: "leading an", title: "An Everlasting Meal", expected: "Everlasting Meal, An"},
		{name: "no article", title: "Venture Deals", expected: "Venture Deals"},
		{name: "article mid-title", title: "Gone with the Wind", expected: "Gone with the Wind"},
		{name: "article-like word", title: "Theory of Everything", expected: "Theory of Everything"},
		{name: "lowercase article", title: "the hobbit", expected: "hobbit, the"},
		{name: "article only", title: "The", expected: "The"},
		{name: "empty", title: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ForTitle(test.title))
		})
	}
}

func TestForPerson(t *testing.T) {
	tests := []struct {
		name     string
		person   string
		expected string
	}{
		{name: "first last", person: "Brad Feld", expected: "Feld, Brad"},
		{name: "middle name", person: "David G. Cohen", expected: "Cohen, David G."},
		{name: "particle", person: "Guy de Maupassant", expected: "de Maupassant, Guy"},
		{name: "dutch particle", person: "Ludwig van Beethoven", expected: "van Beethoven, Ludwig"},
		{name: "single word", person: "Voltaire", expected: "Voltaire"},
		{name: "extra whitespace", person: "  Brad   Feld  ", expected: "Feld, Brad"},
		{name: "empty", person: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ForPerson(test.person))
		})
	}
}
