package tarot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tmajeur/arcanabot/internal/i18n"
)

// Composer renders the three templated artifacts of a reading: the
// narrative, the thematic summary, and the advice list. All three are pure
// transformations over an ordered interpretation list.
type Composer struct {
	tr *i18n.Translator
}

// NewComposer creates a composer using the given translator for the
// boilerplate strings.
func NewComposer(tr *i18n.Translator) *Composer {
	if tr == nil {
		tr = i18n.New()
	}
	return &Composer{tr: tr}
}

var narrativeIntros = map[Context]string{
	ContextGeneral:   "The cards lay out the currents moving through your life right now.",
	ContextLove:      "The cards speak to the matters of your heart.",
	ContextCareer:    "The cards turn their attention to your work and ambitions.",
	ContextHealth:    "The cards reflect on your wellbeing, in body and in spirit.",
	ContextSpiritual: "The cards trace the quieter thread of your inner journey.",
}

// Narrative emits the intro sentence for the context followed by one
// labeled block per interpretation, in input order.
func (c *Composer) Narrative(interps []Interpretation, rctx Context, lang string) string {
	intro, ok := narrativeIntros[rctx]
	if !ok {
		intro = narrativeIntros[ContextGeneral]
	}

	var b strings.Builder
	b.WriteString(c.tr.Translate(intro, lang))
	b.WriteString("\n")

	for i, in := range interps {
		label := c.tr.Translate("Card %d", lang, i+1)
		if in.Position != nil && in.Position.Name != "" {
			label = in.Position.Name
		}

		arcana := c.tr.Translate("Major Arcana", lang)
		if !in.Major {
			arcana = c.tr.Translate("%s of the %s element", lang, suitTitle(in.Suit), in.Element)
		}

		fmt.Fprintf(&b, "\n%s: %s (%s)\n%s\n%s\n", label, in.CardName, in.OrientationLabel, arcana, in.Meaning)
	}
	return b.String()
}

// theme is one entry of the keyword-frequency analysis.
type theme struct {
	keyword string
	count   int
}

// analyzeThemes tallies keyword frequency across all interpretations,
// keeps keywords occurring more than once, sorts descending by frequency
// (ties by first appearance), and returns at most the top five.
func analyzeThemes(interps []Interpretation) []theme {
	counts := make(map[string]int)
	first := make(map[string]int)
	order := 0
	for _, in := range interps {
		for _, kw := range in.Keywords {
			if _, seen := counts[kw]; !seen {
				first[kw] = order
				order++
			}
			counts[kw]++
		}
	}

	themes := make([]theme, 0, len(counts))
	for kw, n := range counts {
		if n > 1 {
			themes = append(themes, theme{kw, n})
		}
	}
	sort.SliceStable(themes, func(i, j int) bool {
		if themes[i].count != themes[j].count {
			return themes[i].count > themes[j].count
		}
		return first[themes[i].keyword] < first[themes[j].keyword]
	})
	if len(themes) > 5 {
		themes = themes[:5]
	}
	return themes
}

var contextGuidance = map[Context]string{
	ContextGeneral:   "Take what resonates and carry it into the week ahead.",
	ContextLove:      "Let the reading inform how you show up for the people you love.",
	ContextCareer:    "Weigh the reading against what you already know about your work.",
	ContextHealth:    "Treat the reading as an invitation to listen to your body.",
	ContextSpiritual: "Sit with the reading before deciding what it asks of you.",
}

// Summary reports the card counts, the dominant themes, and an overall
// message classified by the reversed-card percentage.
func (c *Composer) Summary(interps []Interpretation, rctx Context, lang string) string {
	total := len(interps)
	var majors, reversed int
	for _, in := range interps {
		if in.Major {
			majors++
		}
		if in.Orientation == Reversed {
			reversed++
		}
	}
	minors := total - majors

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n",
		c.tr.Translate("Cards drawn: %d (%d major, %d minor, %d reversed)", lang, total, majors, minors, reversed))

	if themes := analyzeThemes(interps); len(themes) > 0 {
		names := make([]string, len(themes))
		for i, t := range themes {
			names[i] = fmt.Sprintf("%s (%d)", t.keyword, t.count)
		}
		fmt.Fprintf(&b, "%s\n", c.tr.Translate("Recurring themes: %s", lang, strings.Join(names, ", ")))
	}

	var overall string
	switch pct := reversedShare(reversed, total); {
	case pct > 0.50:
		overall = "The reading carries significant resistance; expect to work for what you want."
	case pct > 0.25:
		overall = "The reading is mixed, with both open doors and friction along the way."
	default:
		overall = "The reading is largely favorable; the path ahead is more open than not."
	}
	guidance, ok := contextGuidance[rctx]
	if !ok {
		guidance = contextGuidance[ContextGeneral]
	}
	fmt.Fprintf(&b, "%s %s", c.tr.Translate(overall, lang), c.tr.Translate(guidance, lang))
	return b.String()
}

func reversedShare(reversed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(reversed) / float64(total)
}

// adviceRule maps trigger substrings found in meaning text to one fixed
// advice sentence. Order here fixes the scan order.
type adviceRule struct {
	triggers []string
	advice   string
}

var adviceRules = []adviceRule{
	{[]string{"trust", "intuition"}, "Trust your intuition over outside opinion; you already sense the answer."},
	{[]string{"action", "move"}, "Favor action over deliberation; a concrete step will teach you more than another day of thought."},
	{[]string{"patience", "wait"}, "Practice patience; forcing the timing will cost more than honoring it."},
	{[]string{"change", "transform"}, "Cooperate with the change underway instead of defending what it replaces."},
	{[]string{"balance", "harmony"}, "Restore balance deliberately; notice which side of your life is being starved."},
	{[]string{"release", "let go"}, "Release what has completed its purpose; the space it leaves is the point."},
	{[]string{"focus", "concentrate"}, "Narrow your focus to the one thing that matters most this week."},
}

var genericAdvice = []string{
	"Reflect on the cards before acting; the first reaction is rarely the whole message.",
	"Keep the question in mind over the coming days and watch what the world echoes back.",
	"Return to the reading in a week and see which card proved truest.",
}

// Advice scans each interpretation's lowercased meaning for the fixed
// trigger sets, collecting matched advice in first-seen order, deduplicated
// and capped at three lines. When nothing matches, the generic block is
// returned instead.
func (c *Composer) Advice(interps []Interpretation, lang string) string {
	seen := make(map[string]bool)
	var lines []string
	for _, in := range interps {
		meaning := strings.ToLower(in.Meaning)
		for _, rule := range adviceRules {
			if seen[rule.advice] {
				continue
			}
			for _, trig := range rule.triggers {
				if strings.Contains(meaning, trig) {
					seen[rule.advice] = true
					lines = append(lines, c.tr.Translate(rule.advice, lang))
					break
				}
			}
		}
	}
	if len(lines) == 0 {
		for _, a := range genericAdvice {
			lines = append(lines, c.tr.Translate(a, lang))
		}
	}
	if len(lines) > 3 {
		lines = lines[:3]
	}
	return strings.Join(lines, "\n")
}

// CompleteReadingParams carries everything FormatCompleteReading assembles
// into the final aggregate.
type CompleteReadingParams struct {
	ReadingType     string
	SpreadName      string
	Context         Context
	Question        string
	Interpretations []Interpretation
	Narrative       string
	Summary         string
	Advice          string

	// AI-enhanced text, when present, replaces the templated equivalent
	// outright; the two sources are never merged.
	AINarrative string
	AIAdvice    string
}

// FormatCompleteReading assembles the Reading aggregate, applying the
// replace-not-merge policy for AI-enhanced narrative and advice.
func FormatCompleteReading(p CompleteReadingParams) *Reading {
	r := &Reading{
		Ref:             uuid.NewString(),
		Type:            p.ReadingType,
		SpreadName:      p.SpreadName,
		Context:         p.Context,
		Question:        p.Question,
		Interpretations: p.Interpretations,
		Narrative:       p.Narrative,
		Summary:         p.Summary,
		Advice:          p.Advice,
		CardCount:       len(p.Interpretations),
		CreatedAt:       time.Now().UTC(),
	}
	if p.AINarrative != "" {
		r.Narrative = p.AINarrative
		r.AIEnhancedNarrative = true
	}
	if p.AIAdvice != "" {
		r.Advice = p.AIAdvice
		r.AIEnhancedAdvice = true
	}
	return r
}
