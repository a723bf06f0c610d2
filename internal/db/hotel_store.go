// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/vbhvn08/premier-inn/internal/model"
)

type HotelStore interface {
	ListHotels(context.Context) ([]model.Hotel, error)
	CreateHotel(context.Context, model.Hotel) error
}
