package binary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// RandomValues returns n pseudo-random values in the range [0, max).
// max must be positive. Duplicates are likely, which Build drops.
// The seed is a parameter, which ensures repeatable results.
func RandomValues(n, max int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	values := make([]int, n)
	for i := range values {
		values[i] = rd.Intn(max)
	}

	return values
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order,
// so the tree is usually not balanced.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	tr := &Tree[int]{}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for _, n := range nodes {
		tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes
// by inserting keys [0, num) in random orders until one of them
// happens to produce a balanced tree. Build is the sane way of getting
// a balanced tree; this exists to show how unlikely it is.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// Large num may take practically forever, so it gives up with
// ctx.Err() once ctx is done.
func BuildRandomBalanced(ctx context.Context, num int, seed int64) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.IsBalanced() {
		if err := ctx.Err(); err != nil {
			return nil, attempts, err
		}
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = &Tree[int]{}
		for _, n := range nodes {
			tr.Insert(n)
		}
	}

	return tr, attempts, nil
}

// FromTraversals rebuilds the exact shape of a tree
// from its pre- and in-order traversals.
func FromTraversals[S ~[]T, T constraints.Ordered](pre, in S) (*Tree[T], error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	// the in-order traversal of a search tree is strictly ascending,
	// which also rules out duplicates
	seen := make(map[T]struct{}, len(in))
	for i, k := range in {
		if i > 0 && !(in[i-1] < k) {
			return nil, errors.New("in-order traversal is not strictly ascending")
		}
		seen[k] = struct{}{}
	}
	for _, k := range pre {
		if _, ok := seen[k]; !ok {
			return nil, errors.New("pre-order key not found in in-order traversal")
		}
		// also catches duplicates in pre
		delete(seen, k)
	}

	root, ok := fromTraversalsVisit(pre, in)
	if !ok {
		return nil, errors.New("pre- and in-order traversals describe different trees")
	}

	return &Tree[T]{
		root:  root,
		count: len(in),
	}, nil
}

// fromTraversalsVisit returns false if pre and in cannot come from the
// same tree, which the up-front key checks in FromTraversals cannot rule out.
func fromTraversalsVisit[S ~[]T, T constraints.Ordered](pre, in S) (*tree.Node[T], bool) {
	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, true
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, false
	}

	n := tree.NodeOf(x)
	var lok, rok bool
	n.Left, lok = fromTraversalsVisit(pre[1:xi+1], in[:xi])
	n.Right, rok = fromTraversalsVisit(pre[xi+1:], in[xi+1:])

	return n, lok && rok
}
