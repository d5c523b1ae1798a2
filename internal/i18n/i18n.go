// Package i18n provides the translation lookup used for card names,
// orientation labels, and reading boilerplate. The lookup contract is
// key-as-fallback: when a language table or an entry is missing, the key
// itself (the default-language text) is returned, never an empty string.
package i18n

import "fmt"

// DefaultLanguage is the language the keys themselves are written in.
const DefaultLanguage = "en"

// Translator resolves (key, language) pairs against static per-language
// string tables. It is immutable after construction and safe for
// concurrent use.
type Translator struct {
	tables map[string]map[string]string
}

// New builds a Translator over the built-in language tables.
func New() *Translator {
	return &Translator{tables: builtinTables}
}

// Translate returns the translation of key for the given language, or the
// key itself when no translation exists. Optional params are applied with
// fmt.Sprintf to whichever string is selected.
func (t *Translator) Translate(key, lang string, params ...any) string {
	out := key
	if lang != "" && lang != DefaultLanguage {
		if table, ok := t.tables[lang]; ok {
			if s, ok := table[key]; ok {
				out = s
			}
		}
	}
	if len(params) > 0 {
		return fmt.Sprintf(out, params...)
	}
	return out
}

// Languages returns the language codes with built-in tables, excluding the
// default language.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.tables))
	for l := range t.tables {
		langs = append(langs, l)
	}
	return langs
}

// builtinTables maps language code to translations keyed by the English
// source text. Coverage is intentionally partial; anything missing falls
// back to the key.
var builtinTables = map[string]map[string]string{
	"es": {
		"upright":  "al derecho",
		"reversed": "invertida",

		"Insight":         "Percepción",
		"Past":            "Pasado",
		"Present":         "Presente",
		"Future":          "Futuro",
		"You":             "Tú",
		"The Other":       "La otra persona",
		"The Bond":        "El vínculo",
		"Challenge":       "Desafío",
		"Potential":       "Potencial",
		"Foundation":      "Fundamento",
		"Crown":           "Corona",
		"Near Future":     "Futuro cercano",
		"Self":            "Tu postura",
		"Environment":     "Entorno",
		"Hopes and Fears": "Esperanzas y temores",
		"Outcome":         "Resultado",

		"Major Arcana": "Arcanos Mayores",
		"Card %d":      "Carta %d",
	},
	"pt": {
		"upright":  "normal",
		"reversed": "invertida",

		"Past":    "Passado",
		"Present": "Presente",
		"Future":  "Futuro",
		"Card %d": "Carta %d",
	},
}
