package quizgen

import "math/rand"

// shuffled returns a uniform random permutation of items (Fisher-Yates)
// drawn from rng, leaving the input untouched. The rand source is injected
// through the Generator so generation can be seeded in tests.
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
