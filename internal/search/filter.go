// Package search evaluates explore-view criteria against listings.
package search

import (
	"strings"

	"github.com/stpnv0/CampusHaven/internal/domain"
)

// Filter returns the listings matching c in input order. It never
// mutates its input.
func Filter(listings []*domain.Listing, c domain.ListingCriteria) []*domain.Listing {
	text := strings.ToLower(c.SearchText)

	res := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		if matches(l, text, c) {
			res = append(res, l)
		}
	}
	return res
}

func matches(l *domain.Listing, text string, c domain.ListingCriteria) bool {
	if text != "" &&
		!strings.Contains(strings.ToLower(l.Title), text) &&
		!strings.Contains(strings.ToLower(l.Location), text) {
		return false
	}
	if c.Type != "" && l.Type != c.Type {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	return true
}
