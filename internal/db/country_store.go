// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/vbhvn08/premier-inn/internal/model"
)

type CountryStore interface {
	ListCountries(context.Context) ([]model.Country, error)
	CreateCountry(context.Context, model.Country) error
}
