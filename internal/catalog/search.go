package catalog

import (
	"strings"

	"github.com/stylemart/stylemart/internal/models"
)

// Keywords is the category whitelist a query is intersected with. Words
// outside this list never match anything.
var Keywords = []string{"saree", "dress", "shirt", "kurti", "jeans", "lehenga", "top", "gown"}

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Search filters products by keyword. The query is lowercased, stripped of
// punctuation and split on whitespace; only whitelisted words survive. No
// surviving keyword means an empty result, not the full catalog. Otherwise
// every product whose lowercased name contains a surviving keyword is
// returned, in catalog order.
func Search(query string, products []models.Product) []models.Product {
	terms := searchTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matched []models.Product
	for _, p := range products {
		name := strings.ToLower(p.Name)
		for _, t := range terms {
			if strings.Contains(name, t) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// MatchSubstring returns every product whose lowercased name contains the
// given keyword. Used by image search, which derives the keyword from the
// uploaded filename rather than the whitelist.
func MatchSubstring(keyword string, products []models.Product) []models.Product {
	keyword = strings.ToLower(keyword)
	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), keyword) {
			matched = append(matched, p)
		}
	}
	return matched
}

func searchTerms(query string) []string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	var b strings.Builder
	for _, r := range normalized {
		if !strings.ContainsRune(punctuation, r) {
			b.WriteRune(r)
		}
	}

	var terms []string
	for _, word := range strings.Fields(b.String()) {
		for _, k := range Keywords {
			if word == k {
				terms = append(terms, word)
				break
			}
		}
	}
	return terms
}
