// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package booking

import (
	"fmt"
	"testing"

	"github.com/vbhvn08/premier-inn/internal/model"
)

func TestSearchHotels(t *testing.T) {
	hotels := []model.Hotel{
		{Code: "LONCOU", Title: "London County Hall", Brand: "PI"},
		{Code: "LONVIC", Title: "London Victoria", Brand: "PI"},
		{Code: "MANCEN", Title: "Manchester Central", Brand: "HUB"},
		{Code: "EDICAS", Title: "Edinburgh Castle", Brand: "PI"},
	}

	tt := []struct {
		name      string
		query     string
		wantTotal int
		wantFirst string
		wantQuery string
	}{
		{
			name:      "empty query returns everything",
			query:     "",
			wantTotal: 4,
			wantFirst: "LONCOU",
		},
		{
			name:      "case-insensitive title match",
			query:     "LONDON",
			wantTotal: 2,
			wantFirst: "LONCOU",
			wantQuery: "london",
		},
		{
			name:      "match by code",
			query:     "mancen",
			wantTotal: 1,
			wantFirst: "MANCEN",
			wantQuery: "mancen",
		},
		{
			name:      "no match",
			query:     "glasgow",
			wantTotal: 0,
			wantQuery: "glasgow",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			res := SearchHotels(hotels, tc.query)
			if res.Total != tc.wantTotal {
				t.Errorf("total = %d, want %d", res.Total, tc.wantTotal)
			}
			if res.Query != tc.wantQuery {
				t.Errorf("query = %q, want %q", res.Query, tc.wantQuery)
			}
			if tc.wantFirst != "" {
				if len(res.Hotels) == 0 || res.Hotels[0].Code != tc.wantFirst {
					t.Errorf("first result = %v, want code %q", res.Hotels, tc.wantFirst)
				}
			}
		})
	}
}

func TestSearchHotelsCap(t *testing.T) {
	hotels := make([]model.Hotel, 45)
	for i := range hotels {
		hotels[i] = model.Hotel{
			Code:  fmt.Sprintf("LON%03d", i),
			Title: fmt.Sprintf("London Site %d", i),
		}
	}

	res := SearchHotels(hotels, "london")
	if res.Total != 45 {
		t.Errorf("total = %d, want 45", res.Total)
	}
	if len(res.Hotels) != maxHotelResults {
		t.Errorf("len(hotels) = %d, want %d", len(res.Hotels), maxHotelResults)
	}

	// The cap applies to the unfiltered listing as well.
	res = SearchHotels(hotels, "")
	if res.Total != 45 || len(res.Hotels) != maxHotelResults {
		t.Errorf("unfiltered total = %d len = %d, want 45 and %d", res.Total, len(res.Hotels), maxHotelResults)
	}
}
