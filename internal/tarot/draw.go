package tarot

import (
	"fmt"
	"math/rand"
	"sync"
)

// ReversalProbability is the fixed per-card chance of a drawn card landing
// reversed. Chosen once for the whole system.
const ReversalProbability = 0.3

// Engine draws cards from the catalog: uniform sampling without
// replacement, with an independent reversal coin flip per card decided at
// draw time. Orientation never correlates with draw order or card identity.
type Engine struct {
	catalog *Catalog

	// rand.Rand is not safe for concurrent use; independent chat
	// sessions may draw at the same time.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates a draw engine over the given catalog. The RNG is
// injected so tests can seed it.
func NewEngine(catalog *Catalog, rng *rand.Rand) *Engine {
	return &Engine{catalog: catalog, rng: rng}
}

// Draw returns count distinct cards from the filtered pool, each with an
// independently assigned orientation. If count exceeds the pool size the
// result is silently capped to the pool; count < 1 is an error. When
// includeReversals is false every card is dealt upright.
func (e *Engine) Draw(count int, filter PoolFilter, includeReversals bool) ([]DrawnCard, error) {
	if e == nil || e.catalog == nil || e.catalog.Size() == 0 {
		return nil, ErrCatalogNotLoaded
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardCount, count)
	}

	pool, err := e.catalog.Pool(filter)
	if err != nil {
		return nil, err
	}
	if count > len(pool) {
		count = len(pool)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	drawn := make([]DrawnCard, 0, count)
	for range count {
		i := e.rng.Intn(len(pool))
		card := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		reversed := includeReversals && e.rng.Float64() < ReversalProbability
		drawn = append(drawn, DrawnCard{Card: card, Reversed: reversed})
	}
	return drawn, nil
}

// chance reports a single weighted coin flip against the shared RNG. Used
// by the Reader for reading-type pool bias.
func (e *Engine) chance(p float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64() < p
}
