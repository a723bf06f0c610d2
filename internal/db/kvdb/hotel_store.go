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

const bucketHotel = "hotel_store"

func NewHotelStore(db *bolt.DB) (*HotelStore, error) {
	return &HotelStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHotel))
		return err
	})
}

type HotelStore struct {
	db *bolt.DB
}

func (h *HotelStore) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListHotels")
	defer span.End()

	span.AddEvent("View bucket")
	res := make([]model.Hotel, 0)
	err := h.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketHotel))
		return bucket.ForEach(func(_, v []byte) error {
			var hotel model.Hotel
			if err := json.Unmarshal(v, &hotel); err != nil {
				return err
			}
			res = append(res, hotel)
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Title < res[j].Title })
	span.AddEvent("listed hotels", trace.WithAttributes(attribute.Int("count", len(res))))
	return res, nil
}

func (h *HotelStore) CreateHotel(ctx context.Context, hotel model.Hotel) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateHotel")
	defer span.End()

	if hotel.Code == "" {
		err := errors.New("hotel code is required")
		span.RecordError(err)
		return err
	}
	val, err := json.Marshal(hotel)
	if err != nil {
		err := fmt.Errorf("convert hotel to json: %w", err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return h.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketHotel)).Put([]byte(hotel.Code), val)
	})
}
