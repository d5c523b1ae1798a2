package gemini

import (
	"fmt"
	"strings"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// narrativePromptHeader frames the rewrite task. The model must stay inside
// the cards actually drawn; inventing cards is the failure mode this guards
// against.
const narrativePromptHeader = `Rewrite the following tarot reading as a flowing, personal narrative.
Keep every card, its orientation, and its position meaning intact - do not add, remove, or rename cards.
Speak directly to the seeker in the second person. Keep it under 250 words.

`

const advicePromptHeader = `Based on the following tarot reading, write two to three sentences of practical, grounded advice for the seeker.
Stay within what the cards say; no new cards, no predictions of specific events. Speak directly to the seeker.

`

func describeReading(r *tarot.Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reading type: %s. Spread: %s. Context: %s.\n", r.Type, r.SpreadName, r.Context)
	if r.Question != "" {
		fmt.Fprintf(&b, "The seeker asked: %q\n", r.Question)
	}
	b.WriteString("Cards:\n")
	for i, in := range r.Interpretations {
		label := fmt.Sprintf("Card %d", i+1)
		if in.Position != nil {
			label = in.Position.Name
		}
		fmt.Fprintf(&b, "- %s: %s (%s) - %s\n", label, in.CardName, in.OrientationLabel, in.Meaning)
	}
	return b.String()
}

func describeProfile(p *tarot.Profile) string {
	if p == nil {
		return ""
	}
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("gender", p.Gender)
	add("age group", p.AgeGroup)
	add("emotional state", p.EmotionalState)
	add("relationship status", p.RelationshipStatus)
	add("career field", p.CareerField)
	add("spiritual beliefs", p.SpiritualBeliefs)
	if len(parts) == 0 {
		return ""
	}
	return "About the seeker (use lightly, never recite back): " + strings.Join(parts, ", ") + "\n"
}

func buildNarrativePrompt(r *tarot.Reading, p *tarot.Profile) string {
	var b strings.Builder
	b.WriteString(narrativePromptHeader)
	b.WriteString(describeProfile(p))
	b.WriteString(describeReading(r))
	b.WriteString("\nTemplated narrative to rewrite:\n")
	b.WriteString(r.Narrative)
	return b.String()
}

func buildAdvicePrompt(r *tarot.Reading, p *tarot.Profile) string {
	var b strings.Builder
	b.WriteString(advicePromptHeader)
	b.WriteString(describeProfile(p))
	b.WriteString(describeReading(r))
	b.WriteString("\nTemplated advice to improve on:\n")
	b.WriteString(r.Advice)
	return b.String()
}
