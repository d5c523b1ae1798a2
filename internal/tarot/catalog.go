package tarot

import "fmt"

// PoolFilter selects the candidate card set for a draw.
type PoolFilter string

const (
	PoolAll       PoolFilter = "all"
	PoolMajor     PoolFilter = "major"
	PoolMinor     PoolFilter = "minor"
	PoolWands     PoolFilter = "wands"
	PoolCups      PoolFilter = "cups"
	PoolSwords    PoolFilter = "swords"
	PoolPentacles PoolFilter = "pentacles"
)

// Catalog is the immutable card dataset, built once at startup and shared
// read-only across all sessions.
type Catalog struct {
	cards  []*Card
	bySuit map[Suit][]*Card
}

// NewCatalog builds the full 78-card catalog: the 22 major arcana plus the
// four minor suits of 14 cards each.
func NewCatalog() *Catalog {
	cards := make([]*Card, 0, 78)
	cards = append(cards, majorArcana()...)
	cards = append(cards, minorArcana()...)

	bySuit := make(map[Suit][]*Card)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	return &Catalog{cards: cards, bySuit: bySuit}
}

// Size returns the total number of cards in the catalog.
func (c *Catalog) Size() int { return len(c.cards) }

// Card looks up a card by its display name. Returns nil when absent.
func (c *Catalog) Card(name string) *Card {
	for _, card := range c.cards {
		if card.Name == name {
			return card
		}
	}
	return nil
}

// Pool returns the candidate card set for the given filter. The returned
// slice is a fresh copy; callers may reorder or shrink it freely.
func (c *Catalog) Pool(filter PoolFilter) ([]*Card, error) {
	switch filter {
	case PoolAll, "":
		out := make([]*Card, len(c.cards))
		copy(out, c.cards)
		return out, nil
	case PoolMajor:
		return append([]*Card(nil), c.bySuit[SuitMajor]...), nil
	case PoolMinor:
		out := make([]*Card, 0, 56)
		for _, s := range []Suit{SuitWands, SuitCups, SuitSwords, SuitPentacles} {
			out = append(out, c.bySuit[s]...)
		}
		return out, nil
	case PoolWands, PoolCups, PoolSwords, PoolPentacles:
		return append([]*Card(nil), c.bySuit[Suit(filter)]...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPool, filter)
	}
}
