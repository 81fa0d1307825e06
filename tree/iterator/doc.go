// Package iterator provides pull-style tree iterators for use
// by tree implementations.
//
// Nodes carry no parent pointers, so every iterator keeps its
// own bookkeeping: a stack of pending ancestors for the
// depth-first orders, and a FIFO queue for level order.
package iterator

import (
	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item or Node, even for
// the first round of iteration.
// If Next returns false, Item and Node must not be called.
// Item and Node may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
	Node() *tree.Node[T]
}
