package iterator

import (
	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
type InOrderReverse[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root. heightHint works as in NewInOrder.
func NewInOrderReverse[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *InOrderReverse[T] {
	i := &InOrderReverse[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	i.pushRight(root)
	return i
}

func (i *InOrderReverse[T]) pushRight(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Next advances to the next node and returns true if there is one.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushRight(i.at.Left)

	return true
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.at.Key
}

// Node returns the current node of the iterator.
func (i *InOrderReverse[T]) Node() *tree.Node[T] {
	return i.at
}
