package database_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/database"
	"github.com/tmajeur/arcanabot/internal/tarot"
)

func TestNewReadingRecord(t *testing.T) {
	t.Parallel()

	reading := &tarot.Reading{
		Ref:        "ref-1",
		Type:       "love",
		SpreadName: tarot.SpreadRelationship,
		Context:    tarot.ContextLove,
		Question:   "will it last",
		Interpretations: []tarot.Interpretation{
			{CardName: "Ace of Cups", Suit: tarot.SuitCups, Orientation: tarot.Upright},
			{CardName: "The Lovers", Suit: tarot.SuitMajor, Orientation: tarot.Reversed, Major: true},
		},
		Narrative:           "narrative",
		Summary:             "summary",
		Advice:              "advice",
		AIEnhancedNarrative: true,
		CardCount:           2,
		CreatedAt:           time.Now().UTC(),
	}

	rec, err := database.NewReadingRecord(7, reading)
	require.NoError(t, err)

	assert.Equal(t, int64(7), rec.UserID)
	assert.Equal(t, "ref-1", rec.Ref)
	assert.Equal(t, "love", rec.ReadingType)
	assert.Equal(t, tarot.SpreadRelationship, rec.SpreadName)
	assert.Equal(t, "love", rec.Context)
	assert.Equal(t, 2, rec.CardCount)
	assert.True(t, rec.AINarrative)
	assert.False(t, rec.AIAdvice)

	var cards []tarot.Interpretation
	require.NoError(t, json.Unmarshal([]byte(rec.CardsJSON), &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, "Ace of Cups", cards[0].CardName)
	assert.Equal(t, tarot.Reversed, cards[1].Orientation)
}

func TestTarotProfileProjection(t *testing.T) {
	t.Parallel()

	var missing *database.UserProfile
	assert.Nil(t, missing.TarotProfile())

	stored := &database.UserProfile{
		UserID:           7,
		Gender:           "female",
		AgeGroup:         "30-40",
		EmotionalState:   "hopeful",
		IncludeReversals: true,
		Language:         "es",
	}

	p := stored.TarotProfile()
	require.NotNil(t, p)
	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, "30-40", p.AgeGroup)
	assert.Equal(t, "hopeful", p.EmotionalState)
	assert.True(t, p.IncludeReversals)
	assert.Equal(t, "es", p.Language)
}
