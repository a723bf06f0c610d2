// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package booking

import (
	"context"

	"github.com/vbhvn08/premier-inn/internal/db"
	"github.com/vbhvn08/premier-inn/internal/model"
)

func NewDirectory(hotels db.HotelStore, countries db.CountryStore) *Directory {
	return &Directory{hotels: hotels, countries: countries}
}

// Directory answers the two read-only lookups the form needs: the
// country list for dialing codes and the filtered hotel search.
type Directory struct {
	hotels    db.HotelStore
	countries db.CountryStore
}

func (d *Directory) Countries(ctx context.Context) ([]model.Country, error) {
	return d.countries.ListCountries(ctx)
}

func (d *Directory) SearchHotels(ctx context.Context, query string) (HotelSearchResult, error) {
	hotels, err := d.hotels.ListHotels(ctx)
	if err != nil {
		return HotelSearchResult{}, err
	}
	return SearchHotels(hotels, query), nil
}
