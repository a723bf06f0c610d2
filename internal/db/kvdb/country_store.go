// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vbhvn08/premier-inn/internal/model"
)

const bucketCountry = "country_store"

func NewCountryStore(db *bolt.DB) (*CountryStore, error) {
	return &CountryStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCountry))
		return err
	})
}

type CountryStore struct {
	db *bolt.DB
}

func (c *CountryStore) ListCountries(ctx context.Context) ([]model.Country, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListCountries")
	defer span.End()

	span.AddEvent("View bucket")
	res := make([]model.Country, 0)
	err := c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCountry))
		return bucket.ForEach(func(_, v []byte) error {
			var country model.Country
			if err := json.Unmarshal(v, &country); err != nil {
				return err
			}
			res = append(res, country)
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CountryName < res[j].CountryName })
	span.AddEvent("listed countries", trace.WithAttributes(attribute.Int("count", len(res))))
	return res, nil
}

func (c *CountryStore) CreateCountry(ctx context.Context, country model.Country) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateCountry")
	defer span.End()

	if country.CountryName == "" {
		err := errors.New("country name is required")
		span.RecordError(err)
		return err
	}
	val, err := json.Marshal(country)
	if err != nil {
		err := fmt.Errorf("convert country to json: %w", err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCountry)).Put([]byte(country.CountryName), val)
	})
}
