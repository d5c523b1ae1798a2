package tarot

// The major arcana dataset. Meaning tables carry general, love, and career
// text for both orientations; health text exists only where the tradition
// has something specific to say, the assembler falls back to general
// otherwise.

type meanings map[Orientation]map[Context]string

func major(name string, keywords []string, description string, m meanings) *Card {
	return &Card{Name: name, Suit: SuitMajor, Keywords: keywords, Description: description, Meanings: m}
}

func majorArcana() []*Card {
	return []*Card{
		major("The Fool",
			[]string{"beginnings", "innocence", "spontaneity", "leap of faith"},
			"A traveler steps toward the cliff's edge, unburdened and open to whatever comes.",
			meanings{
				Upright: {
					ContextGeneral: "A new journey begins; trust your instincts and take the leap even without a map.",
					ContextLove:    "Fresh romantic energy invites spontaneity; let a connection unfold without overplanning.",
					ContextCareer:  "An unconventional opportunity rewards bold action over careful credentials.",
					ContextHealth:  "Renewed vitality favors starting a new routine with a light heart.",
				},
				Reversed: {
					ContextGeneral: "Recklessness or hesitation stalls the journey; look before the next leap.",
					ContextLove:    "Impulsive choices risk hurting someone; pause before making promises.",
					ContextCareer:  "A hasty move or a fear of starting keeps you stuck at the threshold.",
				},
			}),
		major("The Magician",
			[]string{"manifestation", "willpower", "resourcefulness", "action"},
			"With every tool of the elements on the table, intention becomes reality.",
			meanings{
				Upright: {
					ContextGeneral: "You have every resource needed; focus your will and act to manifest the goal.",
					ContextLove:    "Deliberate effort and clear communication can conjure the relationship you want.",
					ContextCareer:  "Skill and concentration align; move decisively on the project in front of you.",
				},
				Reversed: {
					ContextGeneral: "Scattered energy or manipulation distorts your power; gather your focus.",
					ContextLove:    "Watch for illusion or mixed signals; someone may not be showing their whole hand.",
					ContextCareer:  "Untapped talent is going to waste; stop planning and start producing.",
				},
			}),
		major("The High Priestess",
			[]string{"intuition", "mystery", "inner knowledge", "stillness"},
			"Seated between the pillars, she guards what cannot be learned by asking aloud.",
			meanings{
				Upright: {
					ContextGeneral: "The answer lies beneath the surface; trust your intuition rather than external noise.",
					ContextLove:    "Unspoken currents shape this bond; listen to what is felt, not only what is said.",
					ContextCareer:  "Hold your counsel and observe; hidden information will surface in its own time.",
					ContextHealth:  "Your body is speaking quietly; slow down and pay attention to subtle signals.",
				},
				Reversed: {
					ContextGeneral: "You are ignoring your inner voice; secrets kept or withheld cloud the picture.",
					ContextLove:    "Intuition about a partner is being dismissed; re-center before deciding.",
					ContextCareer:  "Surface facts mislead; dig deeper before committing to a direction.",
				},
			}),
		major("The Empress",
			[]string{"abundance", "nurturing", "creativity", "growth"},
			"The garden flourishes under her patient, generous attention.",
			meanings{
				Upright: {
					ContextGeneral: "Growth and abundance surround you; nurture what you have planted and let it ripen.",
					ContextLove:    "Warmth and care deepen the relationship; generosity is returned in kind.",
					ContextCareer:  "A creative venture is fertile; steady tending will bring a rich harvest.",
					ContextHealth:  "Nourishment and rest restore you; treat your body with patience.",
				},
				Reversed: {
					ContextGeneral: "Neglect or smothering blocks growth; rebalance giving and receiving.",
					ContextLove:    "Dependence or overprotection crowds the bond; give it room to breathe.",
					ContextCareer:  "A stalled project needs attention you have been spending elsewhere.",
				},
			}),
		major("The Emperor",
			[]string{"authority", "structure", "stability", "leadership"},
			"Order is built stone by stone, and he sits at its foundation.",
			meanings{
				Upright: {
					ContextGeneral: "Structure and discipline bring stability; lead with a firm, fair hand.",
					ContextLove:    "Commitment and reliability anchor the relationship; act on your word.",
					ContextCareer:  "Take command of your domain; clear rules and planning secure the position.",
				},
				Reversed: {
					ContextGeneral: "Rigidity or domination undermines order; loosen the grip to keep control.",
					ContextLove:    "Control is being mistaken for care; power struggles erode trust.",
					ContextCareer:  "An inflexible authority blocks progress; work around it rather than against it.",
				},
			}),
		major("The Hierophant",
			[]string{"tradition", "guidance", "conformity", "belief"},
			"The keeper of rites hands down what was handed to him.",
			meanings{
				Upright: {
					ContextGeneral: "Established wisdom and trusted counsel light the path; honor the conventions that work.",
					ContextLove:    "Shared values and formal commitment strengthen the union.",
					ContextCareer:  "A mentor or institution offers the guidance you need; learn the established way first.",
				},
				Reversed: {
					ContextGeneral: "Dogma constrains you; question inherited rules before obeying them.",
					ContextLove:    "Convention is being followed for its own sake; define the relationship on your terms.",
					ContextCareer:  "Institutional thinking stifles innovation; challenge the standard procedure.",
				},
			}),
		major("The Lovers",
			[]string{"union", "choice", "harmony", "alignment"},
			"Two paths converge under the angel's gaze, and a choice must be made wholeheartedly.",
			meanings{
				Upright: {
					ContextGeneral: "A meaningful union or value-defining choice stands before you; choose with the whole heart.",
					ContextLove:    "Deep harmony and mutual attraction bless this connection.",
					ContextCareer:  "A partnership aligns with your values; commit to the collaboration.",
				},
				Reversed: {
					ContextGeneral: "Disharmony or avoidance of a necessary choice creates tension; realign with your values.",
					ContextLove:    "Imbalance or temptation strains the bond; an honest conversation is overdue.",
					ContextCareer:  "A misaligned partnership drains you; renegotiate or release it.",
				},
			}),
		major("The Chariot",
			[]string{"determination", "victory", "control", "momentum"},
			"Opposing forces are harnessed and driven forward by sheer will.",
			meanings{
				Upright: {
					ContextGeneral: "Willpower and discipline carry you past obstacles; keep both reins in hand and move.",
					ContextLove:    "Pursue the relationship with intention; mixed feelings yield to decisive action.",
					ContextCareer:  "Drive and self-control win the contest; momentum is on your side.",
				},
				Reversed: {
					ContextGeneral: "Scattered direction or aggression stalls the advance; regain control before accelerating.",
					ContextLove:    "Pushing too hard, or in two directions at once, unsettles the connection.",
					ContextCareer:  "A project is veering off course; re-assert direction or it will drift.",
				},
			}),
		major("Strength",
			[]string{"courage", "compassion", "patience", "inner strength"},
			"The lion is calmed not by force but by a steady, gentle hand.",
			meanings{
				Upright: {
					ContextGeneral: "Quiet courage and compassion tame what force cannot; your patience is your power.",
					ContextLove:    "Gentleness and steadiness deepen trust; strength here means softness.",
					ContextCareer:  "Persistent, composed effort outlasts louder competitors.",
					ContextHealth:  "Recovery favors gentle persistence over drastic measures.",
				},
				Reversed: {
					ContextGeneral: "Self-doubt or raw temper undermines you; return to your center.",
					ContextLove:    "Insecurity is speaking louder than love; tend your own confidence first.",
					ContextCareer:  "Burnout erodes resolve; restore your reserves before the next push.",
				},
			}),
		major("The Hermit",
			[]string{"introspection", "solitude", "wisdom", "searching"},
			"A single lantern is enough when the seeker walks his own path.",
			meanings{
				Upright: {
					ContextGeneral: "Withdraw to find the answer; solitude and reflection reveal what company obscures.",
					ContextLove:    "Time apart clarifies the heart; know yourself before joining another.",
					ContextCareer:  "Step back from the noise to evaluate the path; expertise grows in quiet study.",
				},
				Reversed: {
					ContextGeneral: "Isolation has curdled into avoidance; it is time to return with what you learned.",
					ContextLove:    "Withdrawal is being read as rejection; open the door a little.",
					ContextCareer:  "Working alone past the point of benefit; seek collaborators and counsel.",
				},
			}),
		major("Wheel of Fortune",
			[]string{"change", "cycles", "destiny", "turning point"},
			"The wheel turns for everyone; the only constant is the turning.",
			meanings{
				Upright: {
					ContextGeneral: "A turning point arrives; ride the change rather than resisting the wheel.",
					ContextLove:    "Fate stirs the relationship; an unexpected shift brings new possibility.",
					ContextCareer:  "Fortune favors you now; act while the cycle is rising.",
				},
				Reversed: {
					ContextGeneral: "A downturn in the cycle tests you; what turns down will turn up again.",
					ContextLove:    "External upheaval strains the bond; hold steady through the rotation.",
					ContextCareer:  "Setbacks outside your control call for patience, not blame.",
				},
			}),
		major("Justice",
			[]string{"fairness", "truth", "accountability", "balance"},
			"The scales weigh every cause with its consequence.",
			meanings{
				Upright: {
					ContextGeneral: "Truth and fairness prevail; decisions made now carry their honest consequences.",
					ContextLove:    "Honesty and equal footing are the relationship's real foundation.",
					ContextCareer:  "A fair judgment or contract is at hand; keep your dealings clean.",
				},
				Reversed: {
					ContextGeneral: "An imbalance or avoided accountability distorts the outcome; set the record straight.",
					ContextLove:    "Unfair weight falls on one partner; name the imbalance plainly.",
					ContextCareer:  "Dishonesty in a deal will surface; correct course before it does.",
				},
			}),
		major("The Hanged Man",
			[]string{"surrender", "new perspective", "pause", "letting go"},
			"Suspended willingly, he sees the world the right way up at last.",
			meanings{
				Upright: {
					ContextGeneral: "Surrender the struggle and let the pause invert your perspective; release brings insight.",
					ContextLove:    "Let go of the script; seeing the relationship from the other side changes everything.",
					ContextCareer:  "Progress requires suspension; wait deliberately instead of forcing the outcome.",
				},
				Reversed: {
					ContextGeneral: "Stalling has become martyrdom; the sacrifice no longer serves its purpose.",
					ContextLove:    "One-sided sacrifice breeds resentment; stop waiting for what you have not asked for.",
					ContextCareer:  "Indecision masquerades as patience; commit to a direction.",
				},
			}),
		major("Death",
			[]string{"transformation", "endings", "transition", "renewal"},
			"What ends here was already finished; what follows has been waiting to begin.",
			meanings{
				Upright: {
					ContextGeneral: "A chapter closes to make room for transformation; let the ending complete itself.",
					ContextLove:    "A relationship phase ends; renewal comes only after the honest goodbye.",
					ContextCareer:  "An old role dissolves; the skills survive into what is being born.",
					ContextHealth:  "Release an exhausting habit; transformation begins with what you stop doing.",
				},
				Reversed: {
					ContextGeneral: "Resisting a necessary ending prolongs the pain; release your grip on what is finished.",
					ContextLove:    "Clinging to a finished pattern keeps the new one from forming.",
					ContextCareer:  "Fear of change chains you to a role you have outgrown.",
				},
			}),
		major("Temperance",
			[]string{"balance", "moderation", "patience", "harmony"},
			"Water flows between the cups without a drop spilled.",
			meanings{
				Upright: {
					ContextGeneral: "Moderation and patient blending of opposites restore harmony; avoid the extremes.",
					ContextLove:    "A balanced, unhurried rhythm suits this bond; mix your differences gently.",
					ContextCareer:  "Measured, steady progress beats dramatic swings; cooperate and calibrate.",
					ContextHealth:  "Balance in diet, rest, and effort is the whole prescription.",
				},
				Reversed: {
					ContextGeneral: "Excess in one direction throws everything off; name the imbalance and temper it.",
					ContextLove:    "Hot-and-cold dynamics exhaust the relationship; seek the middle register.",
					ContextCareer:  "Overwork or overcorrection destabilizes the plan; pace yourself.",
				},
			}),
		major("The Devil",
			[]string{"bondage", "attachment", "materialism", "shadow"},
			"The chains are loose enough to lift off, if the captives ever look down.",
			meanings{
				Upright: {
					ContextGeneral: "An attachment or habit binds you more than you admit; see the chain to loosen it.",
					ContextLove:    "Intensity is shading into possession; distinguish passion from bondage.",
					ContextCareer:  "Golden handcuffs or ruthless ambition hold you; ask what the position costs.",
				},
				Reversed: {
					ContextGeneral: "The grip of an old pattern is breaking; freedom follows the first honest refusal.",
					ContextLove:    "An unhealthy dynamic loosens; choose the relationship freely or not at all.",
					ContextCareer:  "You are outgrowing a limiting situation; the exit is more open than it looks.",
				},
			}),
		major("The Tower",
			[]string{"upheaval", "revelation", "sudden change", "awakening"},
			"Lightning finds the false structure, and what was built on sand comes down.",
			meanings{
				Upright: {
					ContextGeneral: "A sudden upheaval clears away a false structure; the collapse is also a revelation.",
					ContextLove:    "A shock exposes the relationship's real foundation; rebuild on what is true.",
					ContextCareer:  "Abrupt change dismantles the plan; salvage the lesson, not the rubble.",
				},
				Reversed: {
					ContextGeneral: "You are delaying a collapse that must come; a controlled demolition beats a surprise one.",
					ContextLove:    "Avoiding the necessary crisis only raises its eventual cost.",
					ContextCareer:  "Propping up a failing arrangement drains you; let it fall and start clean.",
				},
			}),
		major("The Star",
			[]string{"hope", "healing", "inspiration", "renewal"},
			"After the storm, the water is still and the sky is generous.",
			meanings{
				Upright: {
					ContextGeneral: "Hope returns and healing begins; trust the quiet light after the storm.",
					ContextLove:    "Renewal and faith flow back into the heart; an open, hopeful bond strengthens.",
					ContextCareer:  "Inspiration points toward a worthy long-term goal; follow it with calm confidence.",
					ContextHealth:  "Recovery is genuinely underway; keep faith with the gentle regimen.",
				},
				Reversed: {
					ContextGeneral: "Hope is dim and faith tired; reconnect with what once inspired you.",
					ContextLove:    "Discouragement colors the connection; small honest gestures rekindle it.",
					ContextCareer:  "Disillusionment hides real progress; measure how far you have actually come.",
				},
			}),
		major("The Moon",
			[]string{"illusion", "intuition", "uncertainty", "dreams"},
			"By moonlight the path is real, but nothing on it looks like itself.",
			meanings{
				Upright: {
					ContextGeneral: "Things are not as they appear; move slowly through the uncertainty and trust your intuition.",
					ContextLove:    "Unspoken fears and projections fog the relationship; ask rather than assume.",
					ContextCareer:  "Incomplete information distorts the picture; verify before you commit.",
				},
				Reversed: {
					ContextGeneral: "The fog lifts and confusion resolves; what was hidden becomes plain.",
					ContextLove:    "A misunderstanding clears; see the person rather than the projection.",
					ContextCareer:  "Deception around a venture surfaces; adjust the plan to the facts.",
				},
			}),
		major("The Sun",
			[]string{"joy", "vitality", "success", "clarity"},
			"Everything the light touches is exactly what it appears to be.",
			meanings{
				Upright: {
					ContextGeneral: "Warmth, clarity, and success shine on the situation; enjoy it without suspicion.",
					ContextLove:    "Open-hearted joy radiates through the relationship; celebrate it plainly.",
					ContextCareer:  "Achievement and recognition arrive; your work stands in full light.",
					ContextHealth:  "Vitality is strong; energy invested in wellbeing pays back doubled.",
				},
				Reversed: {
					ContextGeneral: "Joy is muted by doubt or delay, not absence; the sun is behind a passing cloud.",
					ContextLove:    "Small grievances dim real warmth; clear them before they accumulate.",
					ContextCareer:  "Success is near but oversold or postponed; temper the optimism, keep the effort.",
				},
			}),
		major("Judgement",
			[]string{"awakening", "reckoning", "absolution", "calling"},
			"The trumpet sounds, and what was buried rises to account for itself.",
			meanings{
				Upright: {
					ContextGeneral: "A reckoning and an awakening arrive together; answer the call and forgive the past.",
					ContextLove:    "An honest accounting heals the relationship; absolve what can be absolved.",
					ContextCareer:  "A decisive evaluation approaches; own your record and rise to the calling.",
				},
				Reversed: {
					ContextGeneral: "Self-judgment or refusal of the call keeps you in the grave of the old life.",
					ContextLove:    "Old verdicts are being re-read in a new relationship; retire them.",
					ContextCareer:  "Doubt delays the leap your record has already earned.",
				},
			}),
		major("The World",
			[]string{"completion", "integration", "achievement", "wholeness"},
			"The dance closes the circle that the Fool's first step opened.",
			meanings{
				Upright: {
					ContextGeneral: "A cycle completes in wholeness; celebrate the achievement before beginning again.",
					ContextLove:    "The relationship reaches a fulfilled, integrated stage; honor how far it has come.",
					ContextCareer:  "A long effort concludes successfully; the finished work opens wider doors.",
				},
				Reversed: {
					ContextGeneral: "Completion is close but something is left undone; close the loop deliberately.",
					ContextLove:    "An almost-resolved issue keeps the bond from settling; finish the conversation.",
					ContextCareer:  "A project lingers at ninety percent; the last mile is the actual finish.",
				},
			}),
	}
}
