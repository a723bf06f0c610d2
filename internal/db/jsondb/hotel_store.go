// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/vbhvn08/premier-inn/internal/model"
)

// HotelStore serves the static hotel list from a JSON file.
type HotelStore struct {
	filename string
	mu       sync.RWMutex
	hotels   []model.Hotel
}

func NewHotelStore(filename string) (*HotelStore, error) {
	store := &HotelStore{filename: filename}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

func (h *HotelStore) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListHotels")
	defer span.End()

	span.AddEvent("RLock")
	h.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer h.mu.RUnlock()

	res := make([]model.Hotel, len(h.hotels))
	copy(res, h.hotels)
	return res, nil
}

func (h *HotelStore) loadFromFile() error {
	if _, err := os.Stat(h.filename); os.IsNotExist(err) {
		// File does not exist, no hotels to load
		return nil
	}

	fileData, err := os.ReadFile(h.filename)
	if err != nil {
		return err
	}

	var payload struct {
		Hotels []model.Hotel `json:"hotels"`
	}
	if err := json.Unmarshal(fileData, &payload); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.hotels = payload.Hotels
	return nil
}

func (h *HotelStore) CreateHotel(context.Context, model.Hotel) error {
	return errors.New("not implemented")
}
