// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vbhvn08/premier-inn/internal/db"
	"github.com/vbhvn08/premier-inn/internal/db/jsondb"
	"github.com/vbhvn08/premier-inn/internal/db/kvdb"
	"github.com/vbhvn08/premier-inn/internal/server"
)

func main() {
	var (
		serviceName = flag.String("service-name", "group-booking", "otel service name")
		addr        = flag.String("addr", "0.0.0.0:8080", "default server address")
		dbStr       = flag.String("db", "jsondb://testdata", "database connection string")
		otlpAddr    = flag.String("otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "INFO", "log level")
		staticDir   = flag.String("static-dir", "", "path to static directory")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", *addr)
	logger.Info("otlp/gRPC", "address", *otlpAddr, "service", *serviceName)

	if *otlpAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, *otlpAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	var (
		hotelStore       db.HotelStore
		countryStore     db.CountryStore
		translationStore db.TranslationStore
	)

	u, err := url.Parse(*dbStr)
	if err != nil {
		logger.Error("unable to parse db connection string", "error", err)
		os.Exit(1)
	}

	switch u.Scheme {
	case "jsondb":
		dir := u.Host + u.Path
		hotelStore, err = jsondb.NewHotelStore(filepath.Join(dir, "hotels.json"))
		if err != nil {
			logger.Error("could not initialize hotel store", "error", err)
			os.Exit(1)
		}
		countryStore, err = jsondb.NewCountryStore(filepath.Join(dir, "countries.json"))
		if err != nil {
			logger.Error("could not initialize country store", "error", err)
			os.Exit(1)
		}
		translationStore, err = jsondb.NewTranslationStore(filepath.Join(dir, "translations.json"))
		if err != nil {
			logger.Error("could not initialize translation store", "error", err)
			os.Exit(1)
		}
	case "kvdb":
		path := u.Host + u.Path
		db, err := bolt.Open(path, 0600, nil)
		if err != nil {
			logger.Error("could not open database file", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		hotelStore, err = kvdb.NewHotelStore(db)
		if err != nil {
			logger.Error("could not initialize hotel bucket", "error", err)
			os.Exit(1)
		}
		countryStore, err = kvdb.NewCountryStore(db)
		if err != nil {
			logger.Error("could not initialize country bucket", "error", err)
			os.Exit(1)
		}
		translationStore, err = kvdb.NewTranslationStore(db)
		if err != nil {
			logger.Error("could not initialize translation bucket", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr: *addr,
		Handler: server.NewServer(
			*serviceName,
			*staticDir,
			hotelStore,
			countryStore,
			translationStore,
		),
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
