package obst

import "fmt"

// NullMarker is the rendering of an empty key range in a reconstructed tree.
const NullMarker = "∅"

// Reconstruct walks a finalized root table and renders the optimal subtree
// over keys[i..j] as an infix parenthesized string:
//
//	i > j  →  NullMarker
//	i == j →  keys[i]
//	else   →  "(left) root (right)" with root = keys[root[i][j]] and the
//	          two recursive calls over [i, k-1] and [k+1, j].
//
// Reconstruct must only be called on a fully finalized root table: cells
// still holding UnsetRoot would index out of bounds.
// Complexity: O(n) over the rendered range.
func Reconstruct(root [][]int, keys []string, i, j int) string {
	if i > j {
		return NullMarker
	}
	if i == j {
		return keys[i]
	}
	k := root[i][j]

	return fmt.Sprintf("(%s) %s (%s)",
		Reconstruct(root, keys, i, k-1),
		keys[k],
		Reconstruct(root, keys, k+1, j),
	)
}
