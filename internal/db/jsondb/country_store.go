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

// CountryStore serves the static country list from a JSON file.
type CountryStore struct {
	filename  string
	mu        sync.RWMutex
	countries []model.Country
}

func NewCountryStore(filename string) (*CountryStore, error) {
	store := &CountryStore{filename: filename}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

func (c *CountryStore) ListCountries(ctx context.Context) ([]model.Country, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListCountries")
	defer span.End()

	span.AddEvent("RLock")
	c.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer c.mu.RUnlock()

	res := make([]model.Country, len(c.countries))
	copy(res, c.countries)
	return res, nil
}

func (c *CountryStore) loadFromFile() error {
	if _, err := os.Stat(c.filename); os.IsNotExist(err) {
		// File does not exist, no countries to load
		return nil
	}

	fileData, err := os.ReadFile(c.filename)
	if err != nil {
		return err
	}

	var payload struct {
		Countries []model.Country `json:"countries"`
	}
	if err := json.Unmarshal(fileData, &payload); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.countries = payload.Countries
	return nil
}

func (c *CountryStore) CreateCountry(context.Context, model.Country) error {
	return errors.New("not implemented")
}
