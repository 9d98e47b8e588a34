// Package dfs provides small helpers shared by the traversals.
package dfs

// reverse reverses s in place and returns it.
// Time Complexity: O(n).
func reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
