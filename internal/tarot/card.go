// Package tarot implements the reading pipeline: card and spread catalogs,
// the draw engine, the interpretation assembler, the narrative composer,
// and the session-level reader that ties them together.
package tarot

import "time"

// Suit identifies a card's suit. Major arcana cards carry the sentinel
// SuitMajor instead of one of the four minor suits.
type Suit string

const (
	SuitMajor     Suit = "major"
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Element returns the elemental association of the suit, or an empty
// string for the major arcana.
func (s Suit) Element() string {
	switch s {
	case SuitWands:
		return "fire"
	case SuitCups:
		return "water"
	case SuitSwords:
		return "air"
	case SuitPentacles:
		return "earth"
	default:
		return ""
	}
}

// Orientation is the upright or reversed state of a drawn card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Context is the thematic lens of a reading, used to select meaning text.
type Context string

const (
	ContextGeneral   Context = "general"
	ContextLove      Context = "love"
	ContextCareer    Context = "career"
	ContextHealth    Context = "health"
	ContextSpiritual Context = "spiritual"
)

// Card is an immutable catalog entry. Meanings are keyed by orientation and
// context; absent combinations are resolved through the assembler's
// fallback chain, never read directly by callers.
type Card struct {
	Name        string
	Suit        Suit
	Keywords    []string
	Description string
	Meanings    map[Orientation]map[Context]string
}

// IsMajor reports whether the card belongs to the major arcana.
func (c *Card) IsMajor() bool { return c.Suit == SuitMajor }

// Element returns the card's elemental tag, empty for major arcana.
func (c *Card) Element() string { return c.Suit.Element() }

// DrawnCard pairs a catalog card with the orientation assigned at draw time.
type DrawnCard struct {
	Card     *Card
	Reversed bool
}

// Orientation returns the drawn card's orientation.
func (d DrawnCard) Orientation() Orientation {
	if d.Reversed {
		return Reversed
	}
	return Upright
}

// PositionInfo describes the spread position a card was dealt into.
type PositionInfo struct {
	Ordinal     int    `json:"ordinal"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Meaning     string `json:"meaning"`
}

// Interpretation is the structured record produced for one drawn card in
// one reading. It is owned by the reading that produced it.
type Interpretation struct {
	CardName         string        `json:"card_name"`
	Suit             Suit          `json:"suit"`
	Orientation      Orientation   `json:"orientation"`
	OrientationLabel string        `json:"orientation_label"`
	Major            bool          `json:"major"`
	Element          string        `json:"element,omitempty"`
	Keywords         []string      `json:"keywords"`
	Description      string        `json:"description"`
	Meaning          string        `json:"meaning"`
	Position         *PositionInfo `json:"position,omitempty"`
}

// Reading is the aggregate result of one request-to-result cycle.
type Reading struct {
	Ref                 string           `json:"ref"`
	Type                string           `json:"type"`
	SpreadName          string           `json:"spread_name"`
	Context             Context          `json:"context"`
	Question            string           `json:"question,omitempty"`
	Interpretations     []Interpretation `json:"interpretations"`
	Narrative           string           `json:"narrative"`
	Summary             string           `json:"summary"`
	Advice              string           `json:"advice"`
	AIEnhancedNarrative bool             `json:"ai_enhanced_narrative"`
	AIEnhancedAdvice    bool             `json:"ai_enhanced_advice"`
	CardCount           int              `json:"card_count"`
	CreatedAt           time.Time        `json:"created_at"`
}

// Profile is the slice of user state the reading pipeline consumes. It is
// an opaque read-only input; the pipeline never validates or mutates it.
type Profile struct {
	Gender             string
	AgeGroup           string
	EmotionalState     string
	RelationshipStatus string
	CareerField        string
	SpiritualBeliefs   string
	IncludeReversals   bool
	Language           string
}
