package iterator

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*LevelOrder[int])(nil)

// LevelOrder yields nodes breadth-first: the root, then every node
// at depth 1 from left to right, then depth 2, and so on.
type LevelOrder[T constraints.Ordered] struct {
	// only non-nil *tree.Node[T] are ever enqueued
	queue *linkedlistqueue.Queue
	at    *tree.Node[T]
}

// NewLevelOrder returns a new LevelOrder iterator over the tree
// rooted at root. An empty tree yields nothing.
func NewLevelOrder[T constraints.Ordered](root *tree.Node[T]) *LevelOrder[T] {
	q := linkedlistqueue.New()
	if root != nil {
		q.Enqueue(root)
	}

	return &LevelOrder[T]{
		queue: q,
	}
}

// Next advances to the next node and returns true if there is one.
func (i *LevelOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	v, ok := i.queue.Dequeue()
	if !ok {
		i.at = nil
		return false
	}

	i.at = v.(*tree.Node[T])
	if i.at.Left != nil {
		i.queue.Enqueue(i.at.Left)
	}
	if i.at.Right != nil {
		i.queue.Enqueue(i.at.Right)
	}

	return true
}

// Item returns the current key of the iterator.
func (i *LevelOrder[T]) Item() T {
	return i.at.Key
}

// Node returns the current node of the iterator.
func (i *LevelOrder[T]) Node() *tree.Node[T] {
	return i.at
}
