// Package watch provides live queries over the store: a Feed couples a fetch
// of the full current matching set with a redis pub/sub invalidation channel,
// so subscribers see the current set immediately and again after every write
// that touches it. Writers announce changes with Invalidate.
package watch

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Snapshot is one delivery of a live query: the full current matching set,
// never a diff. A non-nil Err ends the stream.
type Snapshot[T any] struct {
	Items []T
	Err   error
}

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

type Feed[T any] struct {
	rdb     *redis.Client
	channel string
	fetch   FetchFunc[T]
}

func NewFeed[T any](rdb *redis.Client, channel string, fetch FetchFunc[T]) *Feed[T] {
	return &Feed[T]{rdb: rdb, channel: channel, fetch: fetch}
}

// Subscribe delivers the initial snapshot, then refetches and redelivers on
// every invalidation published on the feed's channel. The returned channel
// closes when ctx is cancelled or after an error snapshot. With a nil redis
// client the feed degrades to the initial snapshot only.
func (f *Feed[T]) Subscribe(ctx context.Context) <-chan Snapshot[T] {
	out := make(chan Snapshot[T], 1)

	go func() {
		defer close(out)

		var invalidations <-chan *redis.Message
		if f.rdb != nil {
			pubsub := f.rdb.Subscribe(ctx, f.channel)
			defer pubsub.Close()

			// Confirm the subscription before the initial fetch, so no
			// write between fetch and subscribe is missed.
			if _, err := pubsub.Receive(ctx); err != nil {
				deliver(ctx, out, Snapshot[T]{Err: err})
				return
			}
			invalidations = pubsub.Channel()
		}

		items, err := f.fetch(ctx)
		if !deliver(ctx, out, Snapshot[T]{Items: items, Err: err}) || err != nil {
			return
		}

		if invalidations == nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-invalidations:
				if !ok {
					return
				}
				items, err := f.fetch(ctx)
				if !deliver(ctx, out, Snapshot[T]{Items: items, Err: err}) || err != nil {
					return
				}
			}
		}
	}()

	return out
}

func deliver[T any](ctx context.Context, out chan<- Snapshot[T], snap Snapshot[T]) bool {
	select {
	case out <- snap:
		return true
	case <-ctx.Done():
		return false
	}
}

// Invalidate announces a store change on the given channels. Best-effort: a
// publish failure only costs subscribers a refresh, so it is logged and
// dropped.
func Invalidate(ctx context.Context, rdb *redis.Client, channels ...string) {
	if rdb == nil {
		return
	}
	for _, channel := range channels {
		if err := rdb.Publish(ctx, channel, "1").Err(); err != nil {
			log.Printf("watch: publish to %s failed: %v", channel, err)
		}
	}
}
