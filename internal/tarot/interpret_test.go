package tarot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// TestInterpretMeaningTotality checks the fallback chain end to end: no
// card, orientation, and context combination may produce an empty meaning.
func TestInterpretMeaningTotality(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewCatalog()
	assembler := tarot.NewAssembler(nil)

	pool, err := catalog.Pool(tarot.PoolAll)
	require.NoError(t, err)

	contexts := []tarot.Context{
		tarot.ContextGeneral, tarot.ContextLove, tarot.ContextCareer,
		tarot.ContextHealth, tarot.ContextSpiritual,
	}

	for _, card := range pool {
		for _, reversed := range []bool{false, true} {
			d := tarot.DrawnCard{Card: card, Reversed: reversed}
			for _, rctx := range contexts {
				in := assembler.Interpret(d, rctx, nil, "")
				assert.NotEmpty(t, in.Meaning, "card=%q reversed=%v context=%s", card.Name, reversed, rctx)
			}
		}
	}
}

func TestInterpretFallbackToGeneral(t *testing.T) {
	t.Parallel()

	assembler := tarot.NewAssembler(nil)
	card := &tarot.Card{
		Name: "Test Card",
		Suit: tarot.SuitWands,
		Meanings: map[tarot.Orientation]map[tarot.Context]string{
			tarot.Upright: {tarot.ContextGeneral: "general text"},
		},
	}

	in := assembler.Interpret(tarot.DrawnCard{Card: card}, tarot.ContextLove, nil, "")
	assert.Equal(t, "general text", in.Meaning, "missing context falls back to the general text")
}

func TestInterpretMeaningUnavailable(t *testing.T) {
	t.Parallel()

	assembler := tarot.NewAssembler(nil)
	card := &tarot.Card{
		Name: "Test Card",
		Suit: tarot.SuitWands,
		Meanings: map[tarot.Orientation]map[tarot.Context]string{
			tarot.Upright: {tarot.ContextGeneral: "general text"},
		},
	}

	in := assembler.Interpret(tarot.DrawnCard{Card: card, Reversed: true}, tarot.ContextGeneral, nil, "")
	assert.Equal(t, tarot.MeaningUnavailable, in.Meaning,
		"an orientation without a meaning table yields the sentinel text")
}

func TestInterpretFields(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewCatalog()
	assembler := tarot.NewAssembler(nil)

	fool := catalog.Card("The Fool")
	require.NotNil(t, fool)

	in := assembler.Interpret(tarot.DrawnCard{Card: fool, Reversed: true}, tarot.ContextGeneral, nil, "")
	assert.Equal(t, "The Fool", in.CardName)
	assert.Equal(t, tarot.Reversed, in.Orientation)
	assert.Equal(t, "reversed", in.OrientationLabel)
	assert.True(t, in.Major)
	assert.Empty(t, in.Element)
	assert.Nil(t, in.Position)

	swords := catalog.Card("Ace of Swords")
	require.NotNil(t, swords)

	in = assembler.Interpret(tarot.DrawnCard{Card: swords}, tarot.ContextCareer, nil, "")
	assert.False(t, in.Major)
	assert.Equal(t, "air", in.Element)
	assert.Equal(t, tarot.Upright, in.Orientation)
}

func TestInterpretSpreadPositionAlignment(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewCatalog()
	assembler := tarot.NewAssembler(nil)
	spread := tarot.NewSpreadCatalog().Get(tarot.SpreadThreeCard)
	require.NotNil(t, spread)

	drawn := []tarot.DrawnCard{
		{Card: catalog.Card("The Fool")},
		{Card: catalog.Card("The Magician"), Reversed: true},
		{Card: catalog.Card("Ace of Cups")},
	}

	interps := assembler.InterpretSpread(drawn, spread, tarot.ContextGeneral, "")
	require.Len(t, interps, 3)

	wantPositions := []string{"Past", "Present", "Future"}
	for i, in := range interps {
		assert.Equal(t, drawn[i].Card.Name, in.CardName, "output order must match input order")
		require.NotNil(t, in.Position)
		assert.Equal(t, i+1, in.Position.Ordinal)
		assert.Equal(t, wantPositions[i], in.Position.Name)
	}
}

func TestInterpretSpreadSpanishLabels(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewCatalog()
	assembler := tarot.NewAssembler(nil)
	spread := tarot.NewSpreadCatalog().Get(tarot.SpreadThreeCard)

	drawn := []tarot.DrawnCard{
		{Card: catalog.Card("The Fool"), Reversed: true},
		{Card: catalog.Card("The Magician")},
		{Card: catalog.Card("Ace of Cups")},
	}

	interps := assembler.InterpretSpread(drawn, spread, tarot.ContextGeneral, "es")
	require.Len(t, interps, 3)
	assert.Equal(t, "invertida", interps[0].OrientationLabel)
	assert.Equal(t, "Pasado", interps[0].Position.Name)
	assert.Equal(t, "Presente", interps[1].Position.Name)
	assert.Equal(t, "Futuro", interps[2].Position.Name)
}
