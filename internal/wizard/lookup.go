// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package wizard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vbhvn08/premier-inn/internal/booking"
	"github.com/vbhvn08/premier-inn/internal/model"
)

// HotelFinder is the lookup service boundary.
type HotelFinder interface {
	SearchHotels(ctx context.Context, query string) (booking.HotelSearchResult, error)
}

// debounceWindow is how long continuous typing keeps superseding the
// pending lookup.
const debounceWindow = 300 * time.Millisecond

func NewHotelSearch(finder HotelFinder) *HotelSearch {
	return &HotelSearch{
		finder: finder,
		wait:   debounceWindow,
		logger: slog.Default().WithGroup("wizard"),
	}
}

// HotelSearch debounces hotel lookups and drops responses that were
// overtaken by a newer query. Each Search call advances a sequence
// number; only the response whose sequence is still current is
// delivered (last query wins).
type HotelSearch struct {
	finder HotelFinder
	wait   time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// Search schedules a lookup for query after the debounce window and
// hands the hotels to deliver unless a newer query arrived meanwhile.
// Lookup failures degrade to silence: they are logged, never delivered.
func (h *HotelSearch) Search(ctx context.Context, query string, deliver func([]model.Hotel)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	seq := h.seq
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = time.AfterFunc(h.wait, func() {
		if h.stale(seq) {
			return
		}
		res, err := h.finder.SearchHotels(ctx, query)
		if err != nil {
			h.logger.WarnContext(ctx, "hotel lookup failed", "query", query, "error", err)
			return
		}
		if h.stale(seq) {
			return
		}
		deliver(res.Hotels)
	})
}

func (h *HotelSearch) stale(seq uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return seq != h.seq
}
