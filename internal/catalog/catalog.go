// Package catalog loads the product catalog and matches products against
// search queries.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stylemart/stylemart/internal/models"
)

// Loader yields the full ordered product list.
type Loader interface {
	Load() ([]models.Product, error)
}

// FileLoader reads a JSON array of products from disk. Every Load re-reads
// the file, so catalog edits show up on the next request without any cache
// invalidation.
type FileLoader struct {
	Path string
}

// NewFileLoader returns a loader for the catalog file at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load reads and decodes the catalog. A missing or malformed file is an
// error for the caller to propagate; there is no fallback.
func (l *FileLoader) Load() ([]models.Product, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", l.Path, err)
	}
	return products, nil
}

// FindByName returns the first product with the given name. Duplicate
// names in the catalog resolve to the first occurrence only.
func FindByName(products []models.Product, name string) (models.Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}
