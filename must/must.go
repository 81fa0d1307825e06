// Package must unwraps (value, error) results where an error
// can only mean a programming mistake, such as rebuilding a tree
// from traversals that were just taken from another tree.
package must

// Must2 returns p1, or panics with err if it is not nil.
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
