package tarot_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

func newTestEngine(t *testing.T, seed int64) *tarot.Engine {
	t.Helper()
	return tarot.NewEngine(tarot.NewCatalog(), rand.New(rand.NewSource(seed)))
}

func TestDrawDistinctCards(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 1)

	drawn, err := engine.Draw(10, tarot.PoolAll, true)
	require.NoError(t, err)
	require.Len(t, drawn, 10)

	seen := make(map[string]bool, len(drawn))
	for _, d := range drawn {
		assert.False(t, seen[d.Card.Name], "card %q drawn twice", d.Card.Name)
		seen[d.Card.Name] = true
	}
}

func TestDrawWholeDeck(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 2)

	drawn, err := engine.Draw(78, tarot.PoolAll, false)
	require.NoError(t, err)
	require.Len(t, drawn, 78)

	seen := make(map[string]bool, 78)
	for _, d := range drawn {
		seen[d.Card.Name] = true
	}
	assert.Len(t, seen, 78, "drawing the whole deck must yield every card exactly once")
}

func TestDrawCapsAtPoolSize(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 3)

	drawn, err := engine.Draw(100, tarot.PoolMajor, false)
	require.NoError(t, err)
	assert.Len(t, drawn, 22, "oversized requests cap silently at the pool size")
}

func TestDrawInvalidCount(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 4)

	for _, count := range []int{0, -1} {
		_, err := engine.Draw(count, tarot.PoolAll, false)
		require.ErrorIs(t, err, tarot.ErrInvalidCardCount, "count=%d", count)
	}
}

func TestDrawUnknownPool(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 5)

	_, err := engine.Draw(3, "chalices", false)
	require.ErrorIs(t, err, tarot.ErrUnknownPool)
}

func TestDrawEmptyCatalog(t *testing.T) {
	t.Parallel()

	engine := tarot.NewEngine(nil, rand.New(rand.NewSource(6)))

	_, err := engine.Draw(1, tarot.PoolAll, false)
	require.ErrorIs(t, err, tarot.ErrCatalogNotLoaded)
}

func TestDrawReversalsDisabled(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 7)

	for range 20 {
		drawn, err := engine.Draw(5, tarot.PoolAll, false)
		require.NoError(t, err)
		for _, d := range drawn {
			assert.Equal(t, tarot.Upright, d.Orientation())
		}
	}
}

func TestDrawReversalRate(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, 8)

	const rounds = 2000
	var reversed int
	for range rounds {
		drawn, err := engine.Draw(1, tarot.PoolAll, true)
		require.NoError(t, err)
		if drawn[0].Reversed {
			reversed++
		}
	}

	rate := float64(reversed) / float64(rounds)
	assert.InDelta(t, tarot.ReversalProbability, rate, 0.05,
		"reversal rate should track the fixed probability")
}
