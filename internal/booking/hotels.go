// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package booking

import (
	"strings"

	"github.com/vbhvn08/premier-inn/internal/model"
)

// maxHotelResults caps a lookup response so the autocomplete stays usable.
const maxHotelResults = 20

// HotelSearchResult is the lookup service answer. Total counts matches
// before capping, Query echoes the normalized search term.
type HotelSearchResult struct {
	Total  int           `json:"total"`
	Hotels []model.Hotel `json:"hotels"`
	Query  string        `json:"query"`
}

// SearchHotels filters hotels case-insensitively by substring match
// against title or code. An empty query applies no filter, the result
// cap still applies.
func SearchHotels(hotels []model.Hotel, query string) HotelSearchResult {
	query = strings.ToLower(query)

	matches := hotels
	if query != "" {
		matches = make([]model.Hotel, 0, len(hotels))
		for _, h := range hotels {
			if strings.Contains(strings.ToLower(h.Title), query) ||
				strings.Contains(strings.ToLower(h.Code), query) {
				matches = append(matches, h)
			}
		}
	}

	capped := matches
	if len(capped) > maxHotelResults {
		capped = capped[:maxHotelResults]
	}

	return HotelSearchResult{
		Total:  len(matches),
		Hotels: capped,
		Query:  query,
	}
}
