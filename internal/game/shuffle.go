package game

import (
	"slices"
)

// DrawFunc returns a uniform integer in [0, n). It is the engine's only
// source of randomness; injecting it makes every shuffle and side pick
// reproducible from a seed.
type DrawFunc func(n int) int

// shuffle returns a permutation of items built by drawing an index into the
// remaining elements and removing it until none are left. With a uniform
// draw every ordering is equally likely, and equal seeds yield equal
// permutations. The input slice is not modified.
func shuffle[T any](draw DrawFunc, items []T) []T {
	remaining := slices.Clone(items)
	out := make([]T, 0, len(items))
	for len(remaining) > 0 {
		j := draw(len(remaining))
		out = append(out, remaining[j])
		remaining = slices.Delete(remaining, j, j+1)
	}
	return out
}
