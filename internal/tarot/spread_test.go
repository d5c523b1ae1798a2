package tarot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

func TestSpreadDefinitions(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewSpreadCatalog()

	tests := []struct {
		name      string
		cardCount int
	}{
		{tarot.SpreadSingle, 1},
		{tarot.SpreadThreeCard, 3},
		{tarot.SpreadRelationship, 5},
		{tarot.SpreadCelticCross, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spread := catalog.Get(tc.name)
			require.NotNil(t, spread)
			assert.Equal(t, tc.cardCount, spread.CardCount)
			require.Len(t, spread.Positions, spread.CardCount, "every card slot needs a position")

			for i, pos := range spread.Positions {
				assert.Equal(t, i+1, pos.Ordinal, "ordinals must be dense and 1-based")
				assert.NotEmpty(t, pos.Name)
				assert.NotEmpty(t, pos.Meaning)
			}
		})
	}
}

func TestSpreadCatalogNames(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewSpreadCatalog()
	assert.ElementsMatch(t,
		[]string{tarot.SpreadSingle, tarot.SpreadThreeCard, tarot.SpreadRelationship, tarot.SpreadCelticCross},
		catalog.Names())
}

func TestSpreadResolve(t *testing.T) {
	t.Parallel()

	catalog := tarot.NewSpreadCatalog()

	tests := []struct {
		name        string
		readingType string
		override    string
		wantSpread  string
		wantErr     bool
	}{
		{"daily defaults to single", "daily", "", tarot.SpreadSingle, false},
		{"quick defaults to single", "quick", "", tarot.SpreadSingle, false},
		{"general defaults to three card", "general", "", tarot.SpreadThreeCard, false},
		{"career defaults to three card", "career", "", tarot.SpreadThreeCard, false},
		{"health defaults to three card", "health", "", tarot.SpreadThreeCard, false},
		{"love defaults to relationship", "love", "", tarot.SpreadRelationship, false},
		{"deep defaults to celtic cross", "deep", "", tarot.SpreadCelticCross, false},
		{"override wins over default", "daily", tarot.SpreadCelticCross, tarot.SpreadCelticCross, false},
		{"unknown reading type", "weather", "", "", true},
		{"unknown override", "daily", "horseshoe", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spread, err := catalog.Resolve(tc.readingType, tc.override)
			if tc.wantErr {
				require.ErrorIs(t, err, tarot.ErrNoValidSpread)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSpread, spread.Name)
		})
	}
}
