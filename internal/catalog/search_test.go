package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylemart/stylemart/internal/models"
)

var searchCatalog = []models.Product{
	{Name: "Red Saree", Price: "20.5"},
	{Name: "Blue Jeans", Price: "15"},
	{Name: "Silk Saree Deluxe", Price: "45"},
	{Name: "Crop Top", Price: "9.99"},
}

func TestSearchKeywordMatch(t *testing.T) {
	got := Search("saree", searchCatalog)
	assert.Equal(t, []models.Product{searchCatalog[0], searchCatalog[2]}, got)
}

func TestSearchNormalizesPunctuationAndCase(t *testing.T) {
	got := Search("I love this Saree!!", searchCatalog)
	assert.Equal(t, []models.Product{searchCatalog[0], searchCatalog[2]}, got)
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Empty(t, Search("", searchCatalog))
}

func TestSearchNoWhitelistedKeyword(t *testing.T) {
	// Words outside the category whitelist never match, even when they
	// appear in product names.
	assert.Empty(t, Search("blue", searchCatalog))
	assert.Empty(t, Search("xyz-not-a-keyword", searchCatalog))
}

func TestSearchMultipleKeywordsPreserveCatalogOrder(t *testing.T) {
	got := Search("jeans and a top please", searchCatalog)
	assert.Equal(t, []models.Product{searchCatalog[1], searchCatalog[3]}, got)
}

func TestSearchProductMatchedOnce(t *testing.T) {
	// "Crop Top" contains "top" only; a product matching several keywords
	// still appears once.
	got := Search("top gown saree", searchCatalog)
	assert.Len(t, got, 3)
}

func TestMatchSubstring(t *testing.T) {
	got := MatchSubstring("SAREE", searchCatalog)
	assert.Len(t, got, 2)

	assert.Empty(t, MatchSubstring("hat", searchCatalog))
}
