package iterator

import (
	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PreOrder[int])(nil)

// PreOrder yields each node before either of its subtrees,
// left subtree first.
type PreOrder[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// NewPreOrder returns a new PreOrder iterator over the tree
// rooted at root. heightHint works as in NewInOrder.
func NewPreOrder[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *PreOrder[T] {
	i := &PreOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	if root != nil {
		i.stack = append(i.stack, root)
	}
	return i
}

// Next advances to the next node and returns true if there is one.
func (i *PreOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// right goes in first so that left comes out first
	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}
	if i.at.Left != nil {
		i.stack = append(i.stack, i.at.Left)
	}

	return true
}

// Item returns the current key of the iterator.
func (i *PreOrder[T]) Item() T {
	return i.at.Key
}

// Node returns the current node of the iterator.
func (i *PreOrder[T]) Node() *tree.Node[T] {
	return i.at
}
