// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"log/slog"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/vbhvn08/premier-inn/internal/db"
	"github.com/vbhvn08/premier-inn/internal/db/jsondb"
	"github.com/vbhvn08/premier-inn/internal/db/kvdb"
)

func main() {
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)

	jdb := newJsonDB(logger, "../../testdata")
	kdb := newKVDB(logger, "output.db")
	logger.Info("start converting")
	into(kdb, jdb)
	logger.Info("finished converting")
}

type database interface {
	db.HotelStore
	db.CountryStore
	db.TranslationStore
	Close() error
}

type dbWrapper struct {
	db.HotelStore
	db.CountryStore
	db.TranslationStore

	closeFN func() error
}

func (d *dbWrapper) Close() error {
	return d.closeFN()
}

func into(dst, src database) {
	defer src.Close()
	defer dst.Close()
	ctx := context.Background()

	hotels, err := src.ListHotels(ctx)
	if err != nil {
		panic(err)
	}
	for _, h := range hotels {
		if err := dst.CreateHotel(ctx, h); err != nil {
			panic(err)
		}
	}
	countries, err := src.ListCountries(ctx)
	if err != nil {
		panic(err)
	}
	for _, c := range countries {
		if err := dst.CreateCountry(ctx, c); err != nil {
			panic(err)
		}
	}
	list, err := src.ListLanguages(ctx)
	if err != nil {
		panic(err)
	}
	for _, key := range list {
		t, err := src.ByLanguage(ctx, key)
		if err != nil {
			panic(err)
		}
		if err := dst.CreateLanguage(ctx, key, t); err != nil {
			panic(err)
		}
	}
}

func newKVDB(logger *slog.Logger, path string) database {
	bdb, err := bolt.Open(path, 0600, nil)
	if err != nil {
		logger.Error("could not open database file", "error", err)
		os.Exit(1)
	}

	hotelStore, err := kvdb.NewHotelStore(bdb)
	if err != nil {
		logger.Error("could not initialize hotel bucket", "error", err)
		os.Exit(1)
	}

	countryStore, err := kvdb.NewCountryStore(bdb)
	if err != nil {
		logger.Error("could not initialize country bucket", "error", err)
		os.Exit(1)
	}

	translationStore, err := kvdb.NewTranslationStore(bdb)
	if err != nil {
		logger.Error("initialize translation bucket", "error", err)
	}

	return &dbWrapper{
		HotelStore:       hotelStore,
		CountryStore:     countryStore,
		TranslationStore: translationStore,
		closeFN:          bdb.Close,
	}
}

func newJsonDB(logger *slog.Logger, path string) database {
	logger.Info("jsondb storage folder", "path", path)
	hotelStore, err := jsondb.NewHotelStore(path + "/hotels.json")
	if err != nil {
		logger.Error("could not initialize hotel store", "error", path)
		os.Exit(1)
	}
	countryStore, err := jsondb.NewCountryStore(path + "/countries.json")
	if err != nil {
		logger.Error("could not initialize country store", "error", path)
		os.Exit(1)
	}
	translationStore, err := jsondb.NewTranslationStore(path + "/translations.json")
	if err != nil {
		logger.Error("could not initialize translation store", "error", path)
		os.Exit(1)
	}
	return &dbWrapper{
		HotelStore:       hotelStore,
		CountryStore:     countryStore,
		TranslationStore: translationStore,
		closeFN:          func() error { return nil },
	}
}
