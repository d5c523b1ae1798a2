package tarot_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

func interpWith(name string, keywords []string, meaning string, reversed, major bool) tarot.Interpretation {
	o := tarot.Upright
	if reversed {
		o = tarot.Reversed
	}
	return tarot.Interpretation{
		CardName:         name,
		Orientation:      o,
		OrientationLabel: string(o),
		Major:            major,
		Keywords:         keywords,
		Meaning:          meaning,
	}
}

func TestNarrative(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	interps := []tarot.Interpretation{
		interpWith("The Fool", nil, "a leap", false, true),
		interpWith("Ace of Cups", nil, "an offer", true, false),
	}
	interps[1].Suit = tarot.SuitCups
	interps[1].Element = "water"

	got := composer.Narrative(interps, tarot.ContextLove, "")

	assert.Contains(t, got, "matters of your heart", "love readings open with the love intro")
	assert.Contains(t, got, "Card 1: The Fool (upright)")
	assert.Contains(t, got, "Major Arcana")
	assert.Contains(t, got, "Card 2: Ace of Cups (reversed)")
	assert.Contains(t, got, "Cups of the water element")
	assert.Contains(t, got, "a leap")
	assert.Contains(t, got, "an offer")
}

func TestNarrativeUsesPositionLabels(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	in := interpWith("The Fool", nil, "a leap", false, true)
	in.Position = &tarot.PositionInfo{Ordinal: 1, Name: "Past"}

	got := composer.Narrative([]tarot.Interpretation{in}, tarot.ContextGeneral, "")
	assert.Contains(t, got, "Past: The Fool")
	assert.NotContains(t, got, "Card 1:")
}

func TestSummaryCounts(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	interps := []tarot.Interpretation{
		interpWith("a", nil, "", false, true),
		interpWith("b", nil, "", true, true),
		interpWith("c", nil, "", false, false),
		interpWith("d", nil, "", false, false),
	}

	got := composer.Summary(interps, tarot.ContextGeneral, "")
	assert.Contains(t, got, "Cards drawn: 4 (2 major, 2 minor, 1 reversed)")
}

func TestSummaryOverallMessage(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	tests := []struct {
		name     string
		reversed int
		total    int
		want     string
	}{
		{"no reversals is favorable", 0, 4, "largely favorable"},
		{"quarter reversed is still favorable", 1, 4, "largely favorable"},
		{"half reversed is mixed", 2, 4, "mixed"},
		{"mostly reversed carries resistance", 3, 4, "significant resistance"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			interps := make([]tarot.Interpretation, 0, tc.total)
			for i := range tc.total {
				interps = append(interps, interpWith("x", nil, "", i < tc.reversed, false))
			}

			got := composer.Summary(interps, tarot.ContextGeneral, "")
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestSummaryThemes(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	interps := []tarot.Interpretation{
		interpWith("1", []string{"courage", "change", "focus"}, "", false, false),
		interpWith("2", []string{"courage", "change", "drift"}, "", false, false),
		interpWith("3", []string{"courage", "stillness"}, "", false, false),
	}

	got := composer.Summary(interps, tarot.ContextGeneral, "")
	assert.Contains(t, got, "Recurring themes: courage (3), change (2)")
	assert.NotContains(t, got, "focus", "keywords seen once are not themes")
	assert.NotContains(t, got, "drift")
	assert.NotContains(t, got, "stillness")
}

func TestSummaryThemesTopFive(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	kws := []string{"one", "two", "three", "four", "five", "six"}
	interps := []tarot.Interpretation{
		interpWith("1", kws, "", false, false),
		interpWith("2", kws, "", false, false),
	}

	got := composer.Summary(interps, tarot.ContextGeneral, "")
	assert.Contains(t, got, "Recurring themes: one (2), two (2), three (2), four (2), five (2)")
	assert.NotContains(t, got, "six", "theme list is capped at five entries")
}

func TestSummaryNoThemesLine(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	got := composer.Summary([]tarot.Interpretation{
		interpWith("1", []string{"unique"}, "", false, false),
	}, tarot.ContextGeneral, "")
	assert.NotContains(t, got, "Recurring themes")
}

func TestAdviceTriggers(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	interps := []tarot.Interpretation{
		interpWith("1", nil, "You must TRUST what you already know.", false, false),
		interpWith("2", nil, "Patience is asked of you here.", false, false),
	}

	got := composer.Advice(interps, "")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Trust your intuition")
	assert.Contains(t, lines[1], "Practice patience")
}

func TestAdviceDeduplicatesAndCaps(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	interps := []tarot.Interpretation{
		interpWith("1", nil, "trust and more trust", false, false),
		interpWith("2", nil, "trust the action and the change", false, false),
		interpWith("3", nil, "balance and release and focus", false, false),
	}

	got := composer.Advice(interps, "")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3, "advice is capped at three lines")
	assert.Contains(t, lines[0], "Trust your intuition")
	assert.Contains(t, lines[1], "Favor action")
	assert.Contains(t, lines[2], "Cooperate with the change")
}

func TestAdviceGenericFallback(t *testing.T) {
	t.Parallel()

	composer := tarot.NewComposer(nil)

	interps := []tarot.Interpretation{
		interpWith("1", nil, "nothing matching here", false, false),
	}

	got := composer.Advice(interps, "")
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 3, "no triggers yields the fixed generic block")
	assert.Contains(t, lines[0], "Reflect on the cards")
}

func TestFormatCompleteReading(t *testing.T) {
	t.Parallel()

	interps := []tarot.Interpretation{
		interpWith("The Fool", nil, "a leap", false, true),
	}
	params := tarot.CompleteReadingParams{
		ReadingType:     "daily",
		SpreadName:      tarot.SpreadSingle,
		Context:         tarot.ContextGeneral,
		Interpretations: interps,
		Narrative:       "templated narrative",
		Summary:         "templated summary",
		Advice:          "templated advice",
	}

	r := tarot.FormatCompleteReading(params)
	_, err := uuid.Parse(r.Ref)
	require.NoError(t, err, "reading ref must be a valid UUID")
	assert.Equal(t, 1, r.CardCount)
	assert.Equal(t, "templated narrative", r.Narrative)
	assert.Equal(t, "templated advice", r.Advice)
	assert.False(t, r.AIEnhancedNarrative)
	assert.False(t, r.AIEnhancedAdvice)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestFormatCompleteReadingReplacesWithAIText(t *testing.T) {
	t.Parallel()

	params := tarot.CompleteReadingParams{
		ReadingType: "love",
		SpreadName:  tarot.SpreadRelationship,
		Context:     tarot.ContextLove,
		Narrative:   "templated narrative",
		Summary:     "templated summary",
		Advice:      "templated advice",
		AINarrative: "ai narrative",
	}

	r := tarot.FormatCompleteReading(params)
	assert.Equal(t, "ai narrative", r.Narrative, "AI text replaces the template outright")
	assert.True(t, r.AIEnhancedNarrative)
	assert.Equal(t, "templated advice", r.Advice, "advice stays templated when AI advice is absent")
	assert.False(t, r.AIEnhancedAdvice)
	assert.Equal(t, "templated summary", r.Summary, "the summary is never AI-replaced")
}
