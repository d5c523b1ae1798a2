package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// readingTypes are the argument values /reading accepts as a reading type.
var readingTypes = map[string]bool{
	"general": true,
	"love":    true,
	"career":  true,
	"health":  true,
	"deep":    true,
}

// NewReadingHandler returns a handler for the /reading command.
// Usage: /reading [general|love|career|health|deep] [question...]
func NewReadingHandler(deps HandlerDeps) bot.HandlerFunc {
	return readingHandler{deps}.Handle
}

type readingHandler struct {
	deps HandlerDeps
}

func (h readingHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "reading")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Reading handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	readingType, question := parseReadingArgs(update.Message.Text)
	log.InfoContext(ctx, "Handling /reading command",
		"chat_id", chatID, "user_id", userID, "reading_type", readingType)

	req := tarot.ReadingRequest{
		Type:             readingType,
		Question:         question,
		UserID:           userID,
		Enhance:          h.deps.Config.Gemini.Enabled,
		IncludeReversals: h.deps.Config.Reading.IncludeReversals,
		Language:         h.deps.Config.Reading.DefaultLanguage,
	}
	applyProfilePreferences(ctx, h.deps, userID, &req)

	runReading(ctx, b, h.deps, log, chatID, userID, req)
}

// parseReadingArgs splits the command text into a reading type and an
// optional question. An unrecognized first word is treated as part of
// the question and the type defaults to "general".
func parseReadingArgs(text string) (readingType, question string) {
	readingType = "general"

	fields := strings.Fields(text)
	if len(fields) < 2 {
		return readingType, ""
	}

	rest := fields[1:]
	if readingTypes[strings.ToLower(rest[0])] {
		readingType = strings.ToLower(rest[0])
		rest = rest[1:]
	}

	return readingType, strings.Join(rest, " ")
}

// applyProfilePreferences overlays the stored profile preferences onto
// the request. A missing profile or lookup failure leaves the config
// defaults in place.
func applyProfilePreferences(ctx context.Context, deps HandlerDeps, userID int64, req *tarot.ReadingRequest) {
	dbCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
	defer cancel()

	profile, err := deps.Store.GetUserProfile(dbCtx, userID)
	if err != nil {
		deps.Logger.WarnContext(ctx, "Failed to load profile preferences, using defaults", "user_id", userID, "error", err)
		return
	}
	if profile == nil {
		return
	}

	req.IncludeReversals = profile.IncludeReversals
	if profile.Language != "" {
		req.Language = profile.Language
	}
}

// runReading executes a reading request and delivers the result, shared
// by the /reading and /daily handlers.
func runReading(ctx context.Context, b *bot.Bot, deps HandlerDeps, log *slog.Logger, chatID, userID int64, req tarot.ReadingRequest) {
	readCtx, cancel := context.WithTimeout(ctx, readingTimeout)
	defer cancel()

	reading, err := deps.Reader.PerformReading(readCtx, req)
	if err != nil {
		log.ErrorContext(ctx, "Failed to perform reading", "error", err, "user_id", userID)
		_, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: deps.Config.Messages.ReadingFailed})
		if sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	SendChunked(ctx, b, deps, chatID, FormatReading(reading))
	PersistReading(ctx, deps, userID, reading)
}
