package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmajeur/arcanabot/internal/database"
	"github.com/tmajeur/arcanabot/internal/tarot"
)

func TestParseReadingArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		wantType     string
		wantQuestion string
	}{
		{"bare command", "/reading", "general", ""},
		{"type only", "/reading love", "love", ""},
		{"type and question", "/reading career should I switch jobs", "career", "should I switch jobs"},
		{"uppercase type", "/reading LOVE will it last", "love", "will it last"},
		{"question without type", "/reading what comes next", "general", "what comes next"},
		{"unknown type folds into question", "/reading money when", "general", "money when"},
		{"deep reading", "/reading deep", "deep", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotType, gotQuestion := parseReadingArgs(tc.text)
			assert.Equal(t, tc.wantType, gotType)
			assert.Equal(t, tc.wantQuestion, gotQuestion)
		})
	}
}

func TestApplyProfileField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		field  string
		value  string
		wantOK bool
		check  func(t *testing.T, p *database.UserProfile)
	}{
		{"gender", "gender", "female", true, func(t *testing.T, p *database.UserProfile) {
			assert.Equal(t, "female", p.Gender)
		}},
		{"mood alias", "mood", "hopeful", true, func(t *testing.T, p *database.UserProfile) {
			assert.Equal(t, "hopeful", p.EmotionalState)
		}},
		{"emotional_state alias", "emotional_state", "anxious", true, func(t *testing.T, p *database.UserProfile) {
			assert.Equal(t, "anxious", p.EmotionalState)
		}},
		{"reversals on", "reversals", "on", true, func(t *testing.T, p *database.UserProfile) {
			assert.True(t, p.IncludeReversals)
		}},
		{"reversals off", "reversals", "OFF", true, func(t *testing.T, p *database.UserProfile) {
			assert.False(t, p.IncludeReversals)
		}},
		{"language lowercased", "language", "ES", true, func(t *testing.T, p *database.UserProfile) {
			assert.Equal(t, "es", p.Language)
		}},
		{"reversals bad value", "reversals", "maybe", false, nil},
		{"unknown field", "shoe_size", "42", false, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := &database.UserProfile{}
			ok := applyProfileField(p, tc.field, tc.value)
			assert.Equal(t, tc.wantOK, ok)
			if tc.check != nil {
				tc.check(t, p)
			}
		})
	}
}

func TestFormatReading(t *testing.T) {
	t.Parallel()

	r := &tarot.Reading{
		Type:       "love",
		SpreadName: tarot.SpreadThreeCard,
		Question:   "will it last",
		Narrative:  "the narrative",
		Summary:    "the summary",
		Advice:     "the advice",
	}

	got := FormatReading(r)
	assert.Contains(t, got, "Love reading")
	assert.Contains(t, got, "three card spread")
	assert.Contains(t, got, "Your question: will it last")
	assert.Contains(t, got, "the narrative")
	assert.Contains(t, got, "the summary")
	assert.Contains(t, got, "the advice")
	assert.NotContains(t, got, "Personalized by AI")

	r.AIEnhancedNarrative = true
	assert.Contains(t, FormatReading(r), "Personalized by AI")
}

func TestFormatReadingOmitsEmptyQuestion(t *testing.T) {
	t.Parallel()

	r := &tarot.Reading{Type: "daily", SpreadName: tarot.SpreadSingle}
	require.NotContains(t, FormatReading(r), "Your question")
}
