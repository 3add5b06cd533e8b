// Package orderfeed drives the admin live-order view: a fixed-interval
// poll of the order listing delivered as wholesale snapshots on a channel.
package orderfeed

import (
	"context"
	"time"

	"liquor-store-api/models"
)

// FetchFunc produces the current joined order listing.
type FetchFunc func(ctx context.Context) ([]models.OrderResponse, error)

// Snapshot is one poll result. Orders replaces the previous set entirely.
type Snapshot struct {
	Orders []models.OrderResponse
	Err    error
}

type Feed struct {
	fetch    FetchFunc
	interval time.Duration
}

func New(fetch FetchFunc, interval time.Duration) *Feed {
	return &Feed{fetch: fetch, interval: interval}
}

// Run starts polling and returns the snapshot channel. One snapshot is
// produced immediately, then one per tick. Fetches are serialized: ticks
// that fire while a fetch is still in flight are dropped, so a slow store
// never piles up concurrent listing calls. The channel is closed once ctx
// is cancelled.
//
// The channel holds at most one snapshot; when the consumer lags, the
// stale snapshot is replaced by the newest rather than queued.
func (f *Feed) Run(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		f.poll(ctx, out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.poll(ctx, out)
			}
		}
	}()
	return out
}

func (f *Feed) poll(ctx context.Context, out chan Snapshot) {
	orders, err := f.fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	snap := Snapshot{Orders: orders, Err: err}
	select {
	case out <- snap:
	default:
		// Consumer lagging: drop the stale snapshot, keep the fresh one.
		select {
		case <-out:
		default:
		}
		select {
		case out <- snap:
		default:
		}
	}
}
