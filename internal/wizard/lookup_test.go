// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package wizard

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/vbhvn08/premier-inn/internal/booking"
	"github.com/vbhvn08/premier-inn/internal/model"
)

type fakeFinder struct {
	mu      sync.Mutex
	queries []string
	gate    chan struct{} // when set, SearchHotels blocks until closed
}

func (f *fakeFinder) SearchHotels(_ context.Context, query string) (booking.HotelSearchResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return booking.HotelSearchResult{
		Total:  1,
		Hotels: []model.Hotel{{Code: "Q-" + query, Title: query}},
		Query:  query,
	}, nil
}

func newTestSearch(finder HotelFinder, wait time.Duration) *HotelSearch {
	return &HotelSearch{finder: finder, wait: wait, logger: slog.Default()}
}

func TestHotelSearchDebounce(t *testing.T) {
	finder := &fakeFinder{}
	hs := newTestSearch(finder, 10*time.Millisecond)

	delivered := make(chan []model.Hotel, 2)
	deliver := func(hotels []model.Hotel) { delivered <- hotels }

	// Three keystrokes inside the window: only the last query runs.
	hs.Search(context.Background(), "l", deliver)
	hs.Search(context.Background(), "lo", deliver)
	hs.Search(context.Background(), "lon", deliver)

	select {
	case hotels := <-delivered:
		if len(hotels) != 1 || hotels[0].Code != "Q-lon" {
			t.Fatalf("delivered %v, want the result for \"lon\"", hotels)
		}
	case <-time.After(time.Second):
		t.Fatal("no lookup delivered")
	}

	select {
	case hotels := <-delivered:
		t.Fatalf("unexpected second delivery: %v", hotels)
	case <-time.After(50 * time.Millisecond):
	}

	finder.mu.Lock()
	defer finder.mu.Unlock()
	if len(finder.queries) != 1 || finder.queries[0] != "lon" {
		t.Errorf("finder saw queries %v, want [lon]", finder.queries)
	}
}

func TestHotelSearchDropsStaleResponse(t *testing.T) {
	gate := make(chan struct{})
	finder := &fakeFinder{gate: gate}
	hs := newTestSearch(finder, time.Millisecond)

	delivered := make(chan []model.Hotel, 2)
	deliver := func(hotels []model.Hotel) { delivered <- hotels }

	hs.Search(context.Background(), "victoria", deliver)

	// Wait for the first lookup to be in flight, then supersede it.
	for {
		finder.mu.Lock()
		inFlight := len(finder.queries) == 1
		finder.mu.Unlock()
		if inFlight {
			break
		}
		time.Sleep(time.Millisecond)
	}
	finder.mu.Lock()
	finder.gate = nil
	finder.mu.Unlock()
	hs.Search(context.Background(), "manchester", deliver)
	close(gate) // first response arrives after the sequence advanced

	select {
	case hotels := <-delivered:
		if hotels[0].Code != "Q-manchester" {
			t.Fatalf("delivered %v, want the newer query's result", hotels)
		}
	case <-time.After(time.Second):
		t.Fatal("no lookup delivered")
	}

	select {
	case hotels := <-delivered:
		t.Fatalf("stale response was delivered: %v", hotels)
	case <-time.After(50 * time.Millisecond):
	}
}
