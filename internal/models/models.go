// Package models holds the entities shared across the application.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Price is stored as it appears in the catalog file, where some entries
// are quoted ("20.5") and some are bare numbers (15).
type Price string

// UnmarshalJSON accepts both string and numeric JSON values.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = Price(v)
		return nil
	}
	*p = Price(s)
	return nil
}

// Float coerces the price to a number. Unparseable prices count as zero,
// the same way the catalog treats missing fields.
func (p Price) Float() float64 {
	v, err := strconv.ParseFloat(string(p), 64)
	if err != nil {
		return 0
	}
	return v
}

// Product is one catalog entry. Name acts as the natural key within a
// single catalog load; the remaining fields pass through to templates.
type Product struct {
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// User is a credential-store row.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}
