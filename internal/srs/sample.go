package srs

import "math/rand"

// Sample returns the window [skip, skip+take) of a uniformly random permutation of
// items. Only the first skip+take positions are shuffled (partial Fisher-Yates),
// so no item is returned twice. The input slice is not modified.
func Sample[T any](rnd *rand.Rand, items []T, skip, take int) []T {
	n := len(items)
	if skip < 0 {
		skip = 0
	}
	if take <= 0 || skip >= n {
		return []T{}
	}

	end := min(skip+take, n)

	pool := make([]T, n)
	copy(pool, items)

	for i := 0; i < end; i++ {
		j := i + rnd.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[skip:end]
}
