package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// ReadingRecord is the persisted form of a completed reading, keyed by the
// requesting user's Telegram ID. The interpretation list is stored as JSON.
type ReadingRecord struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Ref         string `db:"ref"`
	UserID      int64  `db:"user_id"`
	ReadingType string `db:"reading_type"`
	SpreadName  string `db:"spread_name"`
	Context     string `db:"context"`
	Question    string `db:"question"`
	CardsJSON   string `db:"cards_json"`
	Narrative   string `db:"narrative"`
	Summary     string `db:"summary"`
	Advice      string `db:"advice"`
	AINarrative bool   `db:"ai_narrative"`
	AIAdvice    bool   `db:"ai_advice"`
	CardCount   int    `db:"card_count"`
}

// NewReadingRecord converts a completed reading into its persisted form.
func NewReadingRecord(userID int64, r *tarot.Reading) (*ReadingRecord, error) {
	cards, err := json.Marshal(r.Interpretations)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize interpretations: %w", err)
	}
	return &ReadingRecord{
		CreatedAt:   r.CreatedAt,
		Ref:         r.Ref,
		UserID:      userID,
		ReadingType: r.Type,
		SpreadName:  r.SpreadName,
		Context:     string(r.Context),
		Question:    r.Question,
		CardsJSON:   string(cards),
		Narrative:   r.Narrative,
		Summary:     r.Summary,
		Advice:      r.Advice,
		AINarrative: r.AIEnhancedNarrative,
		AIAdvice:    r.AIEnhancedAdvice,
		CardCount:   r.CardCount,
	}, nil
}

// UserProfile is the stored per-user state driving personalized readings.
// The pipeline consumes it read-only through its tarot.Profile projection.
type UserProfile struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	UserID             int64  `db:"user_id"`
	Gender             string `db:"gender"`
	AgeGroup           string `db:"age_group"`
	EmotionalState     string `db:"emotional_state"`
	RelationshipStatus string `db:"relationship_status"`
	CareerField        string `db:"career_field"`
	SpiritualBeliefs   string `db:"spiritual_beliefs"`
	IncludeReversals   bool   `db:"include_reversals"`
	Language           string `db:"language"`
}

// TarotProfile projects the stored profile into the form the reading
// pipeline consumes.
func (p *UserProfile) TarotProfile() *tarot.Profile {
	if p == nil {
		return nil
	}
	return &tarot.Profile{
		Gender:             p.Gender,
		AgeGroup:           p.AgeGroup,
		EmotionalState:     p.EmotionalState,
		RelationshipStatus: p.RelationshipStatus,
		CareerField:        p.CareerField,
		SpiritualBeliefs:   p.SpiritualBeliefs,
		IncludeReversals:   p.IncludeReversals,
		Language:           p.Language,
	}
}
