package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmajeur/arcanabot/internal/i18n"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	tr := i18n.New()

	tests := []struct {
		name string
		key  string
		lang string
		want string
	}{
		{"default language returns key", "reversed", "en", "reversed"},
		{"empty language returns key", "reversed", "", "reversed"},
		{"spanish translation", "reversed", "es", "invertida"},
		{"portuguese translation", "Past", "pt", "Passado"},
		{"missing entry falls back to key", "The Fool", "es", "The Fool"},
		{"unknown language falls back to key", "reversed", "fr", "reversed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tr.Translate(tc.key, tc.lang))
		})
	}
}

func TestTranslateParams(t *testing.T) {
	t.Parallel()

	tr := i18n.New()

	assert.Equal(t, "Card 2", tr.Translate("Card %d", "en", 2))
	assert.Equal(t, "Carta 2", tr.Translate("Card %d", "es", 2))
	assert.Equal(t, "Carta 7", tr.Translate("Card %d", "pt", 7))
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	tr := i18n.New()
	assert.ElementsMatch(t, []string{"es", "pt"}, tr.Languages())
}

func TestTranslateNeverEmpty(t *testing.T) {
	t.Parallel()

	tr := i18n.New()
	assert.NotEmpty(t, tr.Translate("anything at all", "es"))
}
