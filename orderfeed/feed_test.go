package orderfeed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"liquor-store-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedDeliversSnapshots(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]models.OrderResponse, error) {
		n := calls.Add(1)
		return make([]models.OrderResponse, int(n)), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := New(fetch, 20*time.Millisecond)
	snapshots := feed.Run(ctx)

	// The first snapshot arrives without waiting for a tick.
	select {
	case snap := <-snapshots:
		require.NoError(t, snap.Err)
		assert.Len(t, snap.Orders, 1)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	// Later snapshots replace the set wholesale.
	select {
	case snap := <-snapshots:
		require.NoError(t, snap.Err)
		assert.GreaterOrEqual(t, len(snap.Orders), 2)
	case <-time.After(time.Second):
		t.Fatal("no tick snapshot")
	}
}

func TestFeedSerializesFetches(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	fetch := func(ctx context.Context) ([]models.OrderResponse, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := maxInFlight.Load()
			if n <= old || maxInFlight.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond) // slower than the interval
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	feed := New(fetch, 10*time.Millisecond)
	snapshots := feed.Run(ctx)
	for range snapshots {
	}

	assert.Equal(t, int32(1), maxInFlight.Load(), "fetches must never overlap")
}

func TestFeedStopsOnCancel(t *testing.T) {
	fetch := func(ctx context.Context) ([]models.OrderResponse, error) {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	feed := New(fetch, 10*time.Millisecond)
	snapshots := feed.Run(ctx)

	<-snapshots
	cancel()

	select {
	case _, ok := <-snapshots:
		for ok {
			_, ok = <-snapshots
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestFeedDropsStaleSnapshotForLaggingConsumer(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]models.OrderResponse, error) {
		n := calls.Add(1)
		return make([]models.OrderResponse, int(n)), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := New(fetch, 10*time.Millisecond)
	snapshots := feed.Run(ctx)

	// Let several polls happen without reading.
	time.Sleep(100 * time.Millisecond)

	snap := <-snapshots
	assert.Greater(t, len(snap.Orders), 1, "lagging consumer should see a fresh snapshot, not the first one")
}
