package chops

import (
	"context"

	"go.lepak.sg/bstree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// CoIterator is returned from CoIterate and abstracts
// communication with the walking goroutine.
type CoIterator[T constraints.Ordered] struct {
	items  <-chan T
	cancel context.CancelFunc
}

// Items returns the channel the keys are sent on. It is closed once
// the walk is over, for whatever reason.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop ends the walk early. It may be called any number of times,
// from any goroutine. A key the walker was already offering may
// still be received after Stop returns, so a range loop over Items
// should break right after calling it.
func (c CoIterator[T]) Stop() {
	c.cancel()
}

// CoIterate walks it from a new goroutine and sends each key on
// the Items channel, in the iterator's order:
//
//	co := CoIterate(ctx, t.InOrderIterator())
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// The goroutine exits and closes Items when the iterator is
// exhausted, Stop is called or ctx is done. A nil iterator gives
// an already closed channel.
//
// The tree must not be modified until Items is closed.
func CoIterate[T constraints.Ordered](ctx context.Context, it iterator.Iterator[T]) CoIterator[T] {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan T)
	co := CoIterator[T]{
		items:  out,
		cancel: cancel,
	}

	if it == nil {
		cancel()
		close(out)
		return co
	}

	go func() {
		defer close(out)
		defer cancel()

		for it.Next() {
			select {
			case out <- it.Item():
			case <-ctx.Done():
				return
			}
		}
	}()

	return co
}
