package chops_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bstree/chops"
	"go.lepak.sg/bstree/testutils"
	"go.lepak.sg/bstree/tree"
	"go.lepak.sg/bstree/tree/iterator"
	"go.uber.org/goleak"
)

// newComplete returns the complete tree holding 1..7.
func newComplete() *tree.Node[int] {
	n := func(k int, l, r *tree.Node[int]) *tree.Node[int] {
		return &tree.Node[int]{Key: k, Left: l, Right: r}
	}
	return n(4,
		n(2, tree.NodeOf(1), tree.NodeOf(3)),
		n(6, tree.NodeOf(5), tree.NodeOf(7)))
}

// newWide returns a root with keys 1..size-1 hanging to its right,
// so the walk is long enough to be stopped halfway.
func newWide(size int) *tree.Node[int] {
	root := tree.NodeOf(0)
	at := root
	for k := 1; k < size; k++ {
		at.Right = tree.NodeOf(k)
		at = at.Right
	}
	return root
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name string
		it   iterator.Iterator[int]
		want []int
	}{
		{"nil iterator", nil, nil},
		{"empty tree", iterator.NewInOrder[int](nil, 0), nil},
		{"typed nil", (*iterator.InOrder[int])(nil), nil},
		{"single", iterator.NewInOrder(tree.NodeOf(5), 0), []int{5}},
		{"in-order", iterator.NewInOrder(newComplete(), 2), []int{1, 2, 3, 4, 5, 6, 7}},
		{"reverse", iterator.NewInOrderReverse(newComplete(), 2), []int{7, 6, 5, 4, 3, 2, 1}},
		{"pre-order", iterator.NewPreOrder(newComplete(), 2), []int{4, 2, 1, 3, 6, 5, 7}},
		{"level order", iterator.NewLevelOrder(newComplete()), []int{4, 2, 6, 1, 3, 5, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			co := chops.CoIterate(context.Background(), tt.it)
			testutils.DrainBlocking(t, tt.want, co.Items(), time.Second)
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Stop(t *testing.T) {
	co := chops.CoIterate[int](context.Background(), iterator.NewInOrder(newComplete(), 2))

	assert.Equal(t, 1, <-co.Items())
	co.Stop()
	co.Stop()
	// nobody is receiving, so the walker can only see the cancellation
	goleak.VerifyNone(t)

	_, status := chops.TryRecv(co.Items())
	assert.Equal(t, chops.Closed, status)
}

func TestCoIterate_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	co := chops.CoIterate[int](ctx, iterator.NewLevelOrder(newComplete()))

	assert.Equal(t, 4, <-co.Items())
	cancel()
	goleak.VerifyNone(t)

	_, status := chops.TryRecv(co.Items())
	assert.Equal(t, chops.Closed, status)
}

func TestCoIterate_Concurrent(t *testing.T) {
	const size = 100
	co := chops.CoIterate[int](context.Background(), iterator.NewInOrder(newWide(size), 0))

	barrier := make(chan struct{})
	var mu sync.Mutex
	seen := make(map[int]bool)
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for k := range co.Items() {
				mu.Lock()
				assert.False(t, seen[k], "key %d received twice", k)
				seen[k] = true
				mu.Unlock()
				if k > size/2 {
					co.Stop()
				}
			}
		}()
	}

	close(barrier)
	wg.Wait()

	goleak.VerifyNone(t)
	assert.Less(t, len(seen), size)
}
