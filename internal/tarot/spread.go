package tarot

import "fmt"

// Position is one slot in a spread layout. Ordinals are 1-based and dense:
// a spread of N cards has ordinals exactly 1..N.
type Position struct {
	Ordinal     int
	Name        string
	Description string
	Meaning     string
}

// Spread is a named layout defining how many cards a reading uses and what
// each position means.
type Spread struct {
	Name        string
	Description string
	CardCount   int
	Positions   []Position
}

// SpreadCatalog holds the static spread definitions, loaded once.
type SpreadCatalog struct {
	spreads map[string]*Spread
}

// Spread identifiers and the reading types that map onto them.
const (
	SpreadSingle       = "single"
	SpreadThreeCard    = "three_card"
	SpreadRelationship = "relationship"
	SpreadCelticCross  = "celtic_cross"
)

var defaultSpreadByType = map[string]string{
	"daily":   SpreadSingle,
	"quick":   SpreadSingle,
	"general": SpreadThreeCard,
	"career":  SpreadThreeCard,
	"health":  SpreadThreeCard,
	"love":    SpreadRelationship,
	"deep":    SpreadCelticCross,
}

// NewSpreadCatalog builds the static spread definitions.
func NewSpreadCatalog() *SpreadCatalog {
	spreads := []*Spread{
		{
			Name:        SpreadSingle,
			Description: "One card for a focused daily insight.",
			CardCount:   1,
			Positions: []Position{
				{1, "Insight", "The heart of the matter", "The single current most worth your attention today."},
			},
		},
		{
			Name:        SpreadThreeCard,
			Description: "Past, present, and future of the situation.",
			CardCount:   3,
			Positions: []Position{
				{1, "Past", "What led here", "Influences and events that shaped the present situation."},
				{2, "Present", "Where things stand", "The forces currently at work."},
				{3, "Future", "Where this is heading", "The likely direction if the current course holds."},
			},
		},
		{
			Name:        SpreadRelationship,
			Description: "Five cards on the dynamics between two people.",
			CardCount:   5,
			Positions: []Position{
				{1, "You", "Your side", "What you bring to the connection."},
				{2, "The Other", "Their side", "What the other person brings."},
				{3, "The Bond", "What joins you", "The nature of the connection itself."},
				{4, "Challenge", "What strains it", "The friction the relationship must work through."},
				{5, "Potential", "Where it can go", "What the bond can grow into."},
			},
		},
		{
			Name:        SpreadCelticCross,
			Description: "The ten-card deep dive into a complex question.",
			CardCount:   10,
			Positions: []Position{
				{1, "Present", "The heart of the matter", "The core energy of the situation."},
				{2, "Challenge", "What crosses you", "The immediate obstacle or complication."},
				{3, "Foundation", "What lies beneath", "The root cause below conscious awareness."},
				{4, "Past", "What is passing", "Recent influences now receding."},
				{5, "Crown", "What crowns you", "The conscious goal or best possible outcome."},
				{6, "Near Future", "What approaches", "The next development on the current course."},
				{7, "Self", "How you stand", "Your own attitude within the situation."},
				{8, "Environment", "What surrounds you", "External influences and other people's energy."},
				{9, "Hopes and Fears", "What you carry", "The hope or fear coloring your view."},
				{10, "Outcome", "Where it resolves", "The likely resolution of all these currents."},
			},
		},
	}

	m := make(map[string]*Spread, len(spreads))
	for _, s := range spreads {
		m[s.Name] = s
	}
	return &SpreadCatalog{spreads: m}
}

// Get looks up a spread by name. Returns nil when unknown.
func (sc *SpreadCatalog) Get(name string) *Spread {
	return sc.spreads[name]
}

// Names returns the identifiers of all known spreads.
func (sc *SpreadCatalog) Names() []string {
	names := make([]string, 0, len(sc.spreads))
	for n := range sc.spreads {
		names = append(names, n)
	}
	return names
}

// Resolve returns the spread for a reading request: the explicit override
// when one is given, otherwise the reading type's default. An unknown
// override or an unmapped reading type fails with ErrNoValidSpread.
func (sc *SpreadCatalog) Resolve(readingType, override string) (*Spread, error) {
	if override != "" {
		if s := sc.Get(override); s != nil {
			return s, nil
		}
		return nil, fmt.Errorf("%w: unknown spread %q", ErrNoValidSpread, override)
	}
	name, ok := defaultSpreadByType[readingType]
	if !ok {
		return nil, fmt.Errorf("%w: no default spread for reading type %q", ErrNoValidSpread, readingType)
	}
	return sc.Get(name), nil
}
