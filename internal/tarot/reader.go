package tarot

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/tmajeur/arcanabot/internal/i18n"
)

// cupsBiasProbability is the chance a love reading draws from the cups
// pool instead of the full deck.
const cupsBiasProbability = 0.5

// Enhancer is the AI collaborator that can replace the templated narrative
// and advice. Both calls are best-effort from the Reader's point of view.
type Enhancer interface {
	EnhanceNarrative(ctx context.Context, r *Reading, p *Profile) (string, error)
	EnhanceAdvice(ctx context.Context, r *Reading, p *Profile) (string, error)
}

// ProfileSource supplies user profiles for personalization. A nil profile
// with a nil error means "no profile on record".
type ProfileSource interface {
	Profile(ctx context.Context, userID int64) (*Profile, error)
}

// ReadingRequest describes one reading invocation.
type ReadingRequest struct {
	Type             string
	Context          Context // optional; derived from Type when empty
	Question         string
	SpreadOverride   string
	IncludeReversals bool
	UserID           int64
	Enhance          bool
	Language         string
}

// Stats summarizes the in-memory reading history.
type Stats struct {
	TotalReadings       int
	ReadingTypes        map[string]int
	SpreadTypes         map[string]int
	AverageCardsPerRead float64
}

// Reader sequences draw, interpretation, composition, optional AI
// enhancement, and history bookkeeping for each reading request. It owns
// no state beyond the per-invocation working set and the append-only
// history list.
type Reader struct {
	log       *slog.Logger
	catalog   *Catalog
	spreads   *SpreadCatalog
	engine    *Engine
	assembler *Assembler
	composer  *Composer

	enhancer Enhancer      // optional
	profiles ProfileSource // optional

	mu      sync.Mutex
	history []*Reading
}

// ReaderOption configures optional Reader collaborators.
type ReaderOption func(*Reader)

// WithEnhancer attaches the AI enhancement collaborator.
func WithEnhancer(e Enhancer) ReaderOption {
	return func(r *Reader) { r.enhancer = e }
}

// WithProfileSource attaches the user-profile collaborator.
func WithProfileSource(p ProfileSource) ReaderOption {
	return func(r *Reader) { r.profiles = p }
}

// NewReader constructs a reading session orchestrator over an explicit
// catalog and RNG. There is deliberately no package-level singleton.
func NewReader(log *slog.Logger, catalog *Catalog, rng *rand.Rand, tr *i18n.Translator, opts ...ReaderOption) *Reader {
	if log == nil {
		log = slog.Default()
	}
	if tr == nil {
		tr = i18n.New()
	}
	r := &Reader{
		log:       log.With("component", "reader"),
		catalog:   catalog,
		spreads:   NewSpreadCatalog(),
		engine:    NewEngine(catalog, rng),
		assembler: NewAssembler(tr),
		composer:  NewComposer(tr),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Spreads exposes the spread catalog for callers that list layouts.
func (r *Reader) Spreads() *SpreadCatalog { return r.spreads }

// contextForType derives the reading context when the request leaves it
// unset.
func contextForType(readingType string) Context {
	switch readingType {
	case "love":
		return ContextLove
	case "career":
		return ContextCareer
	case "health":
		return ContextHealth
	default:
		return ContextGeneral
	}
}

// poolForType selects the card pool, applying the love reading's fixed
// preference for the cups pool.
func (r *Reader) poolForType(readingType string) PoolFilter {
	if readingType == "love" && r.engine.chance(cupsBiasProbability) {
		return PoolCups
	}
	return PoolAll
}

// PerformReading runs the full pipeline for one request. Spread resolution
// and the draw are the only fatal steps; profile lookup and AI enhancement
// are best-effort and fall back silently to absent profile and templated
// text. A reading never fails solely because enhancement failed.
func (r *Reader) PerformReading(ctx context.Context, req ReadingRequest) (*Reading, error) {
	spread, err := r.spreads.Resolve(req.Type, req.SpreadOverride)
	if err != nil {
		r.log.WarnContext(ctx, "Spread resolution failed", "reading_type", req.Type, "override", req.SpreadOverride, "error", err)
		return nil, err
	}

	rctx := req.Context
	if rctx == "" {
		rctx = contextForType(req.Type)
	}

	drawn, err := r.engine.Draw(spread.CardCount, r.poolForType(req.Type), req.IncludeReversals)
	if err != nil {
		r.log.ErrorContext(ctx, "Draw failed", "spread", spread.Name, "count", spread.CardCount, "error", err)
		return nil, err
	}

	interps := r.assembler.InterpretSpread(drawn, spread, rctx, req.Language)

	params := CompleteReadingParams{
		ReadingType:     req.Type,
		SpreadName:      spread.Name,
		Context:         rctx,
		Question:        req.Question,
		Interpretations: interps,
		Narrative:       r.composer.Narrative(interps, rctx, req.Language),
		Summary:         r.composer.Summary(interps, rctx, req.Language),
		Advice:          r.composer.Advice(interps, req.Language),
	}

	if req.Enhance && r.enhancer != nil {
		profile := r.fetchProfile(ctx, req.UserID)
		params.AINarrative, params.AIAdvice = r.enhance(ctx, params, profile)
	}

	reading := FormatCompleteReading(params)
	r.append(reading)

	r.log.InfoContext(ctx, "Reading completed",
		"ref", reading.Ref,
		"reading_type", reading.Type,
		"spread", reading.SpreadName,
		"cards", reading.CardCount,
		"ai_narrative", reading.AIEnhancedNarrative,
		"ai_advice", reading.AIEnhancedAdvice)
	return reading, nil
}

// PerformQuickReading is the fixed three-card variant. It never invokes AI
// enhancement.
func (r *Reader) PerformQuickReading(ctx context.Context, readingType, question string, includeReversals bool) (*Reading, error) {
	return r.PerformReading(ctx, ReadingRequest{
		Type:             readingType,
		Question:         question,
		SpreadOverride:   SpreadThreeCard,
		IncludeReversals: includeReversals,
	})
}

// fetchProfile retrieves the user profile best-effort: any failure is
// logged and treated as an absent profile.
func (r *Reader) fetchProfile(ctx context.Context, userID int64) *Profile {
	if r.profiles == nil || userID == 0 {
		return nil
	}
	profile, err := r.profiles.Profile(ctx, userID)
	if err != nil {
		r.log.WarnContext(ctx, "Profile fetch failed, proceeding without profile", "user_id", userID, "error", err)
		return nil
	}
	return profile
}

// enhance runs the two AI calls against a provisional reading built from
// the templated text. Each call is independently best-effort; an empty
// return means the templated equivalent stands.
func (r *Reader) enhance(ctx context.Context, p CompleteReadingParams, profile *Profile) (narrative, advice string) {
	provisional := &Reading{
		Type:            p.ReadingType,
		SpreadName:      p.SpreadName,
		Context:         p.Context,
		Question:        p.Question,
		Interpretations: p.Interpretations,
		Narrative:       p.Narrative,
		Summary:         p.Summary,
		Advice:          p.Advice,
		CardCount:       len(p.Interpretations),
	}

	n, err := r.enhancer.EnhanceNarrative(ctx, provisional, profile)
	if err != nil {
		r.log.WarnContext(ctx, "AI narrative enhancement failed, keeping templated narrative", "error", err)
	} else {
		narrative = n
	}

	a, err := r.enhancer.EnhanceAdvice(ctx, provisional, profile)
	if err != nil {
		r.log.WarnContext(ctx, "AI advice enhancement failed, keeping templated advice", "error", err)
	} else {
		advice = a
	}
	return narrative, advice
}

func (r *Reader) append(reading *Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, reading)
}

// ReadingHistory returns up to limit readings, most recent first. A
// non-positive limit returns the whole history.
func (r *Reader) ReadingHistory(limit int) []*Reading {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.history)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]*Reading, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.history[i])
	}
	return out
}

// Stats aggregates the in-memory history: totals, per-type and per-spread
// counts, and average cards per reading.
func (r *Reader) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{
		TotalReadings: len(r.history),
		ReadingTypes:  make(map[string]int),
		SpreadTypes:   make(map[string]int),
	}
	var cards int
	for _, rd := range r.history {
		s.ReadingTypes[rd.Type]++
		s.SpreadTypes[rd.SpreadName]++
		cards += rd.CardCount
	}
	if s.TotalReadings > 0 {
		s.AverageCardsPerRead = float64(cards) / float64(s.TotalReadings)
	}
	return s
}
