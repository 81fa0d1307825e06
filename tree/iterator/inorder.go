package iterator

import (
	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder yields keys from the smallest to the largest.
//
// Recursive in order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
//
// The stack holds the nodes whose call is parked at (1).
// Popping one is f(n); pushing the left spine of its right
// child starts (2).
type InOrder[T constraints.Ordered] struct {
	stack []*tree.Node[T]
	at    *tree.Node[T]
}

// NewInOrder creates a new in-order iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrder[T constraints.Ordered](
	root *tree.Node[T], heightHint int) *InOrder[T] {
	i := &InOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	i.pushLeft(root)
	return i
}

func (i *InOrder[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next advances to the next node and returns true if there is one.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(i.at.Right)

	return true
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Key
}

// Node returns the current node of the iterator.
func (i *InOrder[T]) Node() *tree.Node[T] {
	return i.at
}
