package generate

import "math/rand/v2"

// Cycle yields a shuffled copy of its items over and over.
type Cycle[T any] struct {
	items []T
	pos   int
}

func NewCycle[T any](items []T, rng *rand.Rand) *Cycle[T] {
	shuffled := append([]T(nil), items...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return &Cycle[T]{items: shuffled}
}

func (c *Cycle[T]) Next() T {
	v := c.items[c.pos]
	c.pos = (c.pos + 1) % len(c.items)
	return v
}

// Take returns the next n items of a fresh cycle over items.
func Take[T any](items []T, n int, rng *rand.Rand) []T {
	if len(items) == 0 || n <= 0 {
		return nil
	}
	c := NewCycle(items, rng)
	out := make([]T, n)
	for i := range out {
		out[i] = c.Next()
	}
	return out
}
