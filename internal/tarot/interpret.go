package tarot

import (
	"github.com/tmajeur/arcanabot/internal/i18n"
)

// MeaningUnavailable is the sentinel meaning text returned when a card has
// no meaning table for the drawn orientation. The fallback chain guarantees
// callers never see an empty meaning.
const MeaningUnavailable = "The cards hold their silence on this; let the imagery speak for itself."

// Assembler turns drawn cards into structured interpretation records. It is
// stateless apart from the translator and performs no I/O or randomness.
type Assembler struct {
	tr *i18n.Translator
}

// NewAssembler creates an interpretation assembler using the given
// translator for display-name and label resolution.
func NewAssembler(tr *i18n.Translator) *Assembler {
	if tr == nil {
		tr = i18n.New()
	}
	return &Assembler{tr: tr}
}

// resolveMeaning applies the two-level fallback: the context-specific text,
// then the orientation's general text, then the sentinel.
func resolveMeaning(card *Card, o Orientation, rctx Context) string {
	table, ok := card.Meanings[o]
	if !ok || table == nil {
		return MeaningUnavailable
	}
	if text, ok := table[rctx]; ok && text != "" {
		return text
	}
	if text, ok := table[ContextGeneral]; ok && text != "" {
		return text
	}
	return MeaningUnavailable
}

// Interpret produces the interpretation record for one drawn card in the
// given context. The position is optional; quick single-card readings omit
// it. Pure function of its inputs.
func (a *Assembler) Interpret(d DrawnCard, rctx Context, pos *PositionInfo, lang string) Interpretation {
	o := d.Orientation()
	return Interpretation{
		CardName:         a.tr.Translate(d.Card.Name, lang),
		Suit:             d.Card.Suit,
		Orientation:      o,
		OrientationLabel: a.tr.Translate(string(o), lang),
		Major:            d.Card.IsMajor(),
		Element:          d.Card.Element(),
		Keywords:         d.Card.Keywords,
		Description:      d.Card.Description,
		Meaning:          resolveMeaning(d.Card, o, rctx),
		Position:         pos,
	}
}

// InterpretSpread maps Interpret over the drawn cards in input order,
// attaching each card's spread position by its 1-based index. The output
// order matches the input order; position ordinals run 1..len(drawn).
func (a *Assembler) InterpretSpread(drawn []DrawnCard, spread *Spread, rctx Context, lang string) []Interpretation {
	out := make([]Interpretation, 0, len(drawn))
	for i, d := range drawn {
		var pos *PositionInfo
		if spread != nil && i < len(spread.Positions) {
			p := spread.Positions[i]
			pos = &PositionInfo{
				Ordinal:     p.Ordinal,
				Name:        a.tr.Translate(p.Name, lang),
				Description: p.Description,
				Meaning:     p.Meaning,
			}
		}
		out = append(out, a.Interpret(d, rctx, pos, lang))
	}
	return out
}
