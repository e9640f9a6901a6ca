package investing

import (
	"math/rand/v2"
	"sync"
)

// Coin draws the success/failure outcome of an investment
type Coin interface {
	Flip() bool
}

// RandomCoin flips a fair coin from its own generator
type RandomCoin struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomCoin returns a coin seeded from the runtime's entropy source
func NewRandomCoin() *RandomCoin {
	return &RandomCoin{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededCoin returns a coin whose sequence of flips is fixed by seed
func NewSeededCoin(seed uint64) *RandomCoin {
	return &RandomCoin{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// Flip returns true or false with equal probability
func (c *RandomCoin) Flip() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(2) == 1
}

// FixedCoin always lands on the same side
type FixedCoin bool

// Flip returns the fixed outcome
func (c FixedCoin) Flip() bool { return bool(c) }
