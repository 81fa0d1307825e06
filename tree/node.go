package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single node of a binary search tree.
// A node owns its Left and Right subtrees exclusively; there are
// no parent pointers, so a subtree can be detached or replaced by
// simply overwriting the slot that holds it.
//
// Nodes handed out by tree implementations are for reading only.
// Changing Key or the child pointers breaks the ordering invariant.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
}

func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Leaf returns true if n has no children.
func (n *Node[T]) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Height returns the number of edges on the longest path from n
// down to a leaf. The height of a nil subtree is -1, so a single
// leaf has height 0.
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}

	return 1 + max(Height(n.Left), Height(n.Right))
}

// Min returns the leftmost node of the subtree rooted at n,
// or nil if n is nil.
func Min[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n,
// or nil if n is nil.
func Max[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	for n.Right != nil {
		n = n.Right
	}
	return n
}
