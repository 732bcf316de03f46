// Package cart implements the session-held shopping cart: an ordered list
// of product names resolved against the catalog at read time.
package cart

import (
	"github.com/stylemart/stylemart/internal/catalog"
	"github.com/stylemart/stylemart/internal/models"
)

// Cart is an ordered sequence of product names. Duplicates are allowed;
// adding the same product twice yields two entries. Operations return the
// new cart rather than mutating shared state, since the backing storage is
// the user's session cookie.
type Cart []string

// Add appends a product name. There is no existence check against the
// catalog at add time; a name that never resolves simply never contributes
// to totals.
func (c Cart) Add(name string) Cart {
	return append(c, name)
}

// Remove drops every entry equal to name, leaving the relative order of
// the remaining entries unchanged.
func (c Cart) Remove(name string) Cart {
	kept := make(Cart, 0, len(c))
	for _, entry := range c {
		if entry != name {
			kept = append(kept, entry)
		}
	}
	return kept
}

// Clear empties the cart. Used after order confirmation.
func (c Cart) Clear() Cart {
	return nil
}

// Count returns the number of entries, shown on every page.
func (c Cart) Count() int {
	return len(c)
}

// Resolve looks up each entry against the catalog, in cart order. Entries
// that resolve become line items and contribute their price to the total;
// entries that no longer exist in the catalog are skipped silently and
// only counted. Duplicate entries each resolve and sum independently.
func (c Cart) Resolve(products []models.Product) (items []models.Product, total float64, orphans int) {
	for _, name := range c {
		p, ok := catalog.FindByName(products, name)
		if !ok {
			orphans++
			continue
		}
		items = append(items, p)
		total += p.Price.Float()
	}
	return items, total, orphans
}
