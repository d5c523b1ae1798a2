package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// Store defines the data access operations. Methods accept a context for
// cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveReading inserts a completed reading record.
	SaveReading(ctx context.Context, rec *ReadingRecord) error

	// GetRecentReadings retrieves the most recent 'limit' readings for a
	// user, newest first.
	GetRecentReadings(ctx context.Context, userID int64, limit int) ([]ReadingRecord, error)

	// CountReadings returns the total number of persisted readings.
	CountReadings(ctx context.Context) (int64, error)

	// GetUserProfile retrieves a profile by user ID. Returns nil, nil
	// when no profile exists.
	GetUserProfile(ctx context.Context, userID int64) (*UserProfile, error)

	// SaveUserProfile inserts or updates a user profile.
	SaveUserProfile(ctx context.Context, profile *UserProfile) error

	// DeleteAllData deletes all readings and profiles in one transaction.
	DeleteAllData(ctx context.Context) error

	// RunSQLMaintenance performs database maintenance (VACUUM).
	RunSQLMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by sqlx over the given connection.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{db: db, logger: logger.With("component", "store")}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) SaveReading(ctx context.Context, rec *ReadingRecord) error {
	if rec == nil {
		return fmt.Errorf("cannot save nil reading")
	}
	if rec.UserID == 0 {
		return fmt.Errorf("reading must have a non-zero user_id")
	}
	if rec.Ref == "" {
		return fmt.Errorf("reading must have a ref")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO readings (ref, user_id, reading_type, spread_name, context, question,
                              cards_json, narrative, summary, advice, ai_narrative, ai_advice,
                              card_count, created_at)
        VALUES (:ref, :user_id, :reading_type, :spread_name, :context, :question,
                :cards_json, :narrative, :summary, :advice, :ai_narrative, :ai_advice,
                :card_count, :created_at);
    `
	result, err := s.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving reading", "user_id", rec.UserID, "ref", rec.Ref, "error", err)
		return fmt.Errorf("failed to save reading %s: %w", rec.Ref, err)
	}

	if id, err := result.LastInsertId(); err == nil {
		rec.ID = uint(id)
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID for reading", "ref", rec.Ref, "error", err)
	}

	s.logger.DebugContext(ctx, "Reading saved", "user_id", rec.UserID, "ref", rec.Ref, "id", rec.ID)
	return nil
}

func (s *sqlxStore) GetRecentReadings(ctx context.Context, userID int64, limit int) ([]ReadingRecord, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id cannot be zero")
	}
	if limit <= 0 {
		limit = 5
	} else if limit > 50 {
		limit = 50
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var records []ReadingRecord
	query := `
        SELECT id, created_at, ref, user_id, reading_type, spread_name, context, question,
               cards_json, narrative, summary, advice, ai_narrative, ai_advice, card_count
        FROM readings
        WHERE user_id = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?;
    `
	if err := s.db.SelectContext(ctx, &records, query, userID, limit); err != nil {
		s.logger.ErrorContext(ctx, "Error getting recent readings", "user_id", userID, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to get recent readings for user %d: %w", userID, err)
	}

	s.logger.DebugContext(ctx, "Fetched recent readings", "user_id", userID, "count", len(records))
	return records, nil
}

func (s *sqlxStore) CountReadings(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM readings`); err != nil {
		return 0, fmt.Errorf("failed to count readings: %w", err)
	}
	return count, nil
}

func (s *sqlxStore) GetUserProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var profile UserProfile
	query := `SELECT id, created_at, updated_at, user_id, gender, age_group, emotional_state,
	                 relationship_status, career_field, spiritual_beliefs, include_reversals, language
	          FROM user_profiles WHERE user_id = ?`

	err := s.db.GetContext(ctx, &profile, query, userID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No user profile found", "user_id", userID)
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting user profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user profile for user %d: %w", userID, err)
	}
	return &profile, nil
}

func (s *sqlxStore) SaveUserProfile(ctx context.Context, profile *UserProfile) error {
	if profile == nil {
		return fmt.Errorf("cannot save nil user profile")
	}

	now := time.Now().UTC()
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for saving profile", "user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
			}
		}
	}()

	var exists bool
	err = tx.GetContext(ctx, &exists, `SELECT 1 FROM user_profiles WHERE user_id = ? LIMIT 1`, profile.UserID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check if profile exists for user %d: %w", profile.UserID, err)
	}

	var result sql.Result
	if exists {
		query := `
			UPDATE user_profiles SET
				gender = :gender,
				age_group = :age_group,
				emotional_state = :emotional_state,
				relationship_status = :relationship_status,
				career_field = :career_field,
				spiritual_beliefs = :spiritual_beliefs,
				include_reversals = :include_reversals,
				language = :language,
				updated_at = :updated_at
			WHERE user_id = :user_id
		`
		result, err = tx.NamedExecContext(ctx, query, profile)
	} else {
		query := `
			INSERT INTO user_profiles (
				user_id, gender, age_group, emotional_state, relationship_status,
				career_field, spiritual_beliefs, include_reversals, language,
				created_at, updated_at
			) VALUES (
				:user_id, :gender, :age_group, :emotional_state, :relationship_status,
				:career_field, :spiritual_beliefs, :include_reversals, :language,
				:created_at, :updated_at
			)
		`
		result, err = tx.NamedExecContext(ctx, query, profile)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving user profile", "user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to save user profile for user %d: %w", profile.UserID, err)
	}

	if !exists {
		if id, err := result.LastInsertId(); err == nil {
			profile.ID = uint(id)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	operation := "updated"
	if !exists {
		operation = "created"
	}
	s.logger.DebugContext(ctx, "User profile saved", "operation", operation, "user_id", profile.UserID)
	return nil
}

func (s *sqlxStore) DeleteAllData(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for data reset: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
			}
		}
	}()

	readingsResult, err := tx.ExecContext(ctx, `DELETE FROM readings`)
	if err != nil {
		return fmt.Errorf("failed to delete readings during reset: %w", err)
	}
	readingsCount, _ := readingsResult.RowsAffected()

	profilesResult, err := tx.ExecContext(ctx, `DELETE FROM user_profiles`)
	if err != nil {
		return fmt.Errorf("failed to delete user profiles during reset: %w", err)
	}
	profilesCount, _ := profilesResult.RowsAffected()

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit data reset transaction: %w", err)
	}
	tx = nil

	s.logger.InfoContext(ctx, "Reset all data", "readings_deleted", readingsCount, "profiles_deleted", profilesCount)
	return nil
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed")
	return nil
}

// ProfileSource adapts the Store to the reading pipeline's profile
// collaborator interface.
type ProfileSource struct {
	store Store
}

// NewProfileSource wraps the store for use by the tarot Reader.
func NewProfileSource(store Store) *ProfileSource {
	return &ProfileSource{store: store}
}

// Profile implements tarot.ProfileSource. A missing profile is nil, nil.
func (p *ProfileSource) Profile(ctx context.Context, userID int64) (*tarot.Profile, error) {
	stored, err := p.store.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stored.TarotProfile(), nil
}
