package tarot

import "fmt"

// The minor arcana are synthesized from rank and suit templates rather
// than written out card by card: fifty-six meaning tables follow the same
// rank-progression logic per suit, so the dataset is generated from the
// fourteen rank themes crossed with the four suit domains.

type rankTheme struct {
	name     string
	keyword  string
	upright  string // fmt verb slot: suit domain phrase
	reversed string
}

var minorRanks = []rankTheme{
	{"Ace", "potential", "A pure new seed of %s is offered; accept it and plant it well.", "The seed of %s is delayed or squandered; clear the ground before trying again."},
	{"Two", "duality", "A choice or balance within %s asks for careful weighing.", "Imbalance in %s tips the scales; stalling on the choice costs more than either option."},
	{"Three", "growth", "Early effort in %s bears its first visible fruit; keep building with others.", "Growth in %s stalls on poor teamwork or scattered plans; regroup."},
	{"Four", "stability", "A stable foundation in %s holds; consolidate before reaching further.", "Stability in %s has hardened into stagnation; loosen what you are hoarding."},
	{"Five", "conflict", "Loss or strife tests your %s; meet the conflict without abandoning the field.", "The conflict around %s begins to resolve; accept help and cut remaining losses."},
	{"Six", "harmony", "Generosity and earned harmony flow through your %s; give and receive in fair measure.", "One-sided giving unbalances your %s; revisit who carries what."},
	{"Seven", "assessment", "Pause and assess your %s honestly; patience now separates the real from the hoped-for.", "Impatience or self-deception skews your view of %s; audit before acting."},
	{"Eight", "movement", "Skilled, diligent movement advances your %s; momentum rewards the steady hand.", "Effort in %s is trapped or aimless; free yourself from the self-made restriction."},
	{"Nine", "fruition", "Your %s nears fruition; hold your ground through the final stretch.", "Anxiety or excess burdens your %s on the last stretch; lighten the load."},
	{"Ten", "culmination", "A full cycle of %s completes, carrying both its weight and its reward.", "The cycle of %s ends heavily; set the burden down rather than carrying it into the next."},
	{"Page", "curiosity", "A curious, studious spirit opens a new door in %s; stay teachable.", "Restless or naive energy scatters your %s; ground the enthusiasm in practice."},
	{"Knight", "pursuit", "Bold pursuit drives your %s forward; direct the charge with purpose.", "The charge through %s is reckless or has stalled; recover direction before speed."},
	{"Queen", "mastery of heart", "Mature, intuitive care governs your %s; lead by steady example.", "Care for %s turns inward or controlling; return to openhanded strength."},
	{"King", "mastery of mind", "Seasoned command of %s is yours; rule the domain with fairness and vision.", "Authority over %s is misused or doubted; temper command with counsel."},
}

type suitTheme struct {
	suit    Suit
	domains map[Context]string
	kw      []string
	desc    string
}

var minorSuits = []suitTheme{
	{SuitWands, map[Context]string{
		ContextGeneral: "creative drive",
		ContextLove:    "passion",
		ContextCareer:  "ambition",
		ContextHealth:  "vital energy",
	}, []string{"passion", "energy", "will"}, "The suit of fire: inspiration, enterprise, and the will that moves things."},
	{SuitCups, map[Context]string{
		ContextGeneral: "emotional life",
		ContextLove:    "affection",
		ContextCareer:  "working relationships",
		ContextHealth:  "emotional wellbeing",
	}, []string{"emotion", "intuition", "relationships"}, "The suit of water: feeling, connection, and the currents of the heart."},
	{SuitSwords, map[Context]string{
		ContextGeneral: "thoughts and conflicts",
		ContextLove:    "honest communication",
		ContextCareer:  "strategy",
		ContextHealth:  "mental clarity",
	}, []string{"intellect", "truth", "conflict"}, "The suit of air: thought, speech, and the edge that cuts both ways."},
	{SuitPentacles, map[Context]string{
		ContextGeneral: "material affairs",
		ContextLove:    "shared commitments",
		ContextCareer:  "work and finances",
		ContextHealth:  "physical body",
	}, []string{"resources", "work", "security"}, "The suit of earth: matter, money, craft, and what endures."},
}

func minorArcana() []*Card {
	cards := make([]*Card, 0, 56)
	for _, st := range minorSuits {
		for _, rk := range minorRanks {
			m := meanings{Upright: {}, Reversed: {}}
			for cctx, domain := range st.domains {
				m[Upright][cctx] = fmt.Sprintf(rk.upright, domain)
				m[Reversed][cctx] = fmt.Sprintf(rk.reversed, domain)
			}
			cards = append(cards, &Card{
				Name:        fmt.Sprintf("%s of %s", rk.name, suitTitle(st.suit)),
				Suit:        st.suit,
				Keywords:    append([]string{rk.keyword}, st.kw...),
				Description: st.desc,
				Meanings:    m,
			})
		}
	}
	return cards
}

func suitTitle(s Suit) string {
	switch s {
	case SuitWands:
		return "Wands"
	case SuitCups:
		return "Cups"
	case SuitSwords:
		return "Swords"
	case SuitPentacles:
		return "Pentacles"
	default:
		return "Major"
	}
}
