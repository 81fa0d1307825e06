package binary

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"go.lepak.sg/bstree/chops"
	"go.lepak.sg/bstree/tree"
	"go.lepak.sg/bstree/tree/iterator"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrNilVisitor is returned by the traversal methods when they are
// called without a visitor. No node is visited in that case.
var ErrNilVisitor = errors.New("binary: visitor callback is required")

// Tree is a binary search tree that is balanced on demand.
// Build and Rebalance produce a balanced tree; Insert and Delete
// keep the ordering invariant but never restore balance by themselves.
// Call IsBalanced to check and Rebalance to repair.
//
// Tree is not safe for concurrent use. The zero Tree is empty and
// may be used immediately. Tree should not be passed around as a
// value (ie. just use &Tree{} when creating one).
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// nodes given out to clients are read-only by contract.
	root  *tree.Node[T]
	count int
}

// Build builds a balanced tree from values.
// Duplicates are dropped and values does not need to be sorted.
// values itself is left untouched.
func Build[T constraints.Ordered](values []T) *Tree[T] {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return &Tree[T]{
		root:  buildBalanced(sorted, 0, len(sorted)-1),
		count: len(sorted),
	}
}

// buildBalanced roots the subtree for sorted[start:end+1] at its
// lower middle element. sorted must be ascending with no duplicates.
// The resulting height is floor(log2(end-start+1)).
func buildBalanced[T constraints.Ordered](sorted []T, start, end int) *tree.Node[T] {
	if start > end {
		return nil
	}

	mid := (start + end) / 2
	n := tree.NodeOf(sorted[mid])
	n.Left = buildBalanced(sorted, start, mid-1)
	n.Right = buildBalanced(sorted, mid+1, end)

	return n
}

// Root returns the root node, or nil if the tree is empty.
// It is meant for read-only consumers such as tree printers.
func (t *Tree[T]) Root() *tree.Node[T] {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Insert inserts k into the tree.
// If k is already in the tree, Insert returns false and nothing changes.
// The tree is not rebalanced.
func (t *Tree[T]) Insert(k T) bool {
	var inserted bool
	t.root = insert(t.root, k, &inserted)
	if inserted {
		t.count++
	}
	return inserted
}

func insert[T constraints.Ordered](n *tree.Node[T], k T, inserted *bool) *tree.Node[T] {
	if n == nil {
		*inserted = true
		return tree.NodeOf(k)
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left = insert(n.Left, k, inserted)
	case tree.Greater:
		n.Right = insert(n.Right, k, inserted)
	case tree.Equal:
		// already present
	default:
		panic("unreachable")
	}

	return n
}

// Delete removes k from the tree.
// If k is not in the tree, Delete returns false and nothing changes.
//
// A node with two children is not unlinked itself: it takes over the
// key of its in-order successor (the minimum of its right subtree),
// and the successor is deleted from the right subtree instead.
func (t *Tree[T]) Delete(k T) bool {
	var deleted bool
	t.root = remove(t.root, k, &deleted)
	if deleted {
		t.count--
	}
	return deleted
}

func remove[T constraints.Ordered](n *tree.Node[T], k T, deleted *bool) *tree.Node[T] {
	if n == nil {
		return nil
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left = remove(n.Left, k, deleted)
	case tree.Greater:
		n.Right = remove(n.Right, k, deleted)
	case tree.Equal:
		if n.Left == nil {
			// also covers the leaf
			*deleted = true
			return n.Right
		}
		if n.Right == nil {
			*deleted = true
			return n.Left
		}

		n.Key = tree.Min(n.Right).Key
		n.Right = remove(n.Right, n.Key, deleted)
	default:
		panic("unreachable")
	}

	return n
}

// Find returns the node holding k, or nil if k is not in the tree.
// The returned node must not be modified.
func (t *Tree[T]) Find(k T) *tree.Node[T] {
	return find(t.root, k)
}

func find[T constraints.Ordered](n *tree.Node[T], k T) *tree.Node[T] {
	if n == nil {
		return nil
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		return find(n.Left, k)
	case tree.Greater:
		return find(n.Right, k)
	default:
		return n
	}
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.Find(k) != nil
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	if n := tree.Min(t.root); n != nil {
		return n.Key, true
	}
	return
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	if n := tree.Max(t.root); n != nil {
		return n.Key, true
	}
	return
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Without parent pointers, remember the last node where the
	// search turned right: that is the closest smaller ancestor.
	n := t.root
	for n != nil {
		if n.Key < k {
			p, ok = n.Key, true
			n = n.Right
		} else {
			n = n.Left
		}
	}

	return
}

// Height returns the number of edges on the longest path from n down
// to a leaf. Height(nil) is -1 and the height of a leaf is 0.
// n does not need to belong to t.
func (t *Tree[T]) Height(n *tree.Node[T]) int {
	return tree.Height(n)
}

// IdealHeight returns the height a balanced tree with the same
// number of keys would have, or -1 for an empty tree.
func (t *Tree[T]) IdealHeight() int {
	return bits.Len(uint(t.count)) - 1
}

// Depth returns the number of edges from the root to n.
// n is matched by identity, not by key: if n is nil or is not a node
// of this tree, Depth returns -1, even when the tree holds n.Key.
func (t *Tree[T]) Depth(n *tree.Node[T]) int {
	if n == nil {
		return -1
	}

	// n.Key leads to the only place n could be.
	depth := 0
	for cur := t.root; cur != nil; depth++ {
		if cur == n {
			return depth
		}

		switch tree.Compare(n.Key, cur.Key) {
		case tree.Less:
			cur = cur.Left
		case tree.Greater:
			cur = cur.Right
		default:
			// same key, different node
			return -1
		}
	}

	return -1
}

// IsBalanced returns true if, at every node, the heights of the
// left and right subtrees differ by at most one.
// The empty tree is balanced.
func (t *Tree[T]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

// balancedHeight returns the height of n and whether n is balanced,
// in one pass. Once a subtree is found unbalanced the height is
// meaningless and the rest of the walk is skipped.
func balancedHeight[T constraints.Ordered](n *tree.Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}

	lh, ok := balancedHeight(n.Left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.Right)
	if !ok {
		return 0, false
	}

	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}

	return 1 + max(lh, rh), true
}

// Rebalance throws away the current shape and rebuilds the tree
// the same way Build does, from the keys in order.
// Rebalancing a tree that came straight out of Build or Rebalance
// yields the identical shape.
func (t *Tree[T]) Rebalance() {
	keys := t.Values()
	t.root = buildBalanced(keys, 0, len(keys)-1)
	t.count = len(keys)
}

// Values returns every key in the tree in ascending order.
func (t *Tree[T]) Values() []T {
	keys := make([]T, 0, t.count)
	// the visitor is never nil
	_ = t.InOrder(func(n *tree.Node[T]) {
		keys = append(keys, n.Key)
	})
	return keys
}

// LevelOrder calls visit on every node breadth-first,
// left to right within a level.
func (t *Tree[T]) LevelOrder(visit func(n *tree.Node[T])) error {
	if visit == nil {
		return ErrNilVisitor
	}

	i := t.LevelOrderIterator()
	for i.Next() {
		visit(i.Node())
	}

	return nil
}

// PreOrder calls visit on every node, each node before its subtrees.
func (t *Tree[T]) PreOrder(visit func(n *tree.Node[T])) error {
	if visit == nil {
		return ErrNilVisitor
	}

	visitPreOrder(t.root, visit)
	return nil
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], visit func(*tree.Node[T])) {
	if n == nil {
		return
	}

	visit(n)
	visitPreOrder(n.Left, visit)
	visitPreOrder(n.Right, visit)
}

// InOrder calls visit on every node in ascending key order.
func (t *Tree[T]) InOrder(visit func(n *tree.Node[T])) error {
	if visit == nil {
		return ErrNilVisitor
	}

	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which keeps its own stack.
	visitInOrder(t.root, visit)
	return nil
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T], visit func(*tree.Node[T])) {
	if n == nil {
		return
	}

	visitInOrder(n.Left, visit)
	visit(n)
	visitInOrder(n.Right, visit)
}

// PostOrder calls visit on every node, each node after its subtrees.
func (t *Tree[T]) PostOrder(visit func(n *tree.Node[T])) error {
	if visit == nil {
		return ErrNilVisitor
	}

	visitPostOrder(t.root, visit)
	return nil
}

func visitPostOrder[T constraints.Ordered](n *tree.Node[T], visit func(*tree.Node[T])) {
	if n == nil {
		return
	}

	visitPostOrder(n.Left, visit)
	visitPostOrder(n.Right, visit)
	visit(n)
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, t.IdealHeight())
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, t.IdealHeight())
}

// PreOrderIterator returns an iterator object that yields
// keys from the tree in pre-order.
func (t *Tree[T]) PreOrderIterator() *iterator.PreOrder[T] {
	return iterator.NewPreOrder(t.root, t.IdealHeight())
}

// LevelOrderIterator returns an iterator object that yields
// keys from the tree breadth-first.
func (t *Tree[T]) LevelOrderIterator() *iterator.LevelOrder[T] {
	return iterator.NewLevelOrder(t.root)
}

// InOrderCoroutine walks the tree in ascending order from a new
// goroutine, sending each key on the Items channel:
//
//	co := t.InOrderCoroutine(ctx)
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// The goroutine exits when the walk is finished, Stop is called or
// ctx is done. The tree must not be modified until then.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) chops.CoIterator[T] {
	return chops.CoIterate[T](ctx, t.InOrderIterator())
}

// String draws the tree sideways: the root is in the leftmost column,
// right subtrees above their parent and left subtrees below it.
// A complete binary tree with height 2 would look like this:
//
//	│       ┌── 7
//	│   ┌── 6
//	│   │   └── 5
//	└── 4
//	    │   ┌── 3
//	    └── 2
//	        └── 1
//
// The empty tree is drawn as "".
func (t *Tree[T]) String() string {
	var sb strings.Builder
	printvisit(&sb, t.root, "", true)
	return sb.String()
}

const (
	treeUpBranch     = "┌── "
	treeDownBranch   = "└── "
	treeContinue     = "│   "
	treeLastContinue = "    "
)

// printvisit writes the subtree at n. below is true when n hangs
// below its parent (a left child, or the root).
func printvisit[T constraints.Ordered](sb *strings.Builder, n *tree.Node[T], prefix string, below bool) {
	if n == nil {
		return
	}

	if below {
		printvisit(sb, n.Right, prefix+treeContinue, false)
		sb.WriteString(prefix + treeDownBranch)
	} else {
		printvisit(sb, n.Right, prefix+treeLastContinue, false)
		sb.WriteString(prefix + treeUpBranch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteByte('\n')

	if below {
		printvisit(sb, n.Left, prefix+treeLastContinue, true)
	} else {
		printvisit(sb, n.Left, prefix+treeContinue, true)
	}
}
