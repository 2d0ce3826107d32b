package scrambler

import "math/rand/v2"

// ensureRand returns r, or a fresh auto-seeded source when r is nil.
func ensureRand(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand creates a deterministic random source from a single
// seed. Transforms given the same pixmap, parameters, and seed produce
// identical output.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
