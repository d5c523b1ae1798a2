package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// NewDailyHandler returns a handler for the /daily command, a single-card
// pull for the day ahead.
func NewDailyHandler(deps HandlerDeps) bot.HandlerFunc {
	return dailyHandler{deps}.Handle
}

type dailyHandler struct {
	deps HandlerDeps
}

func (h dailyHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "daily")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Daily handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	log.InfoContext(ctx, "Handling /daily command", "chat_id", chatID, "user_id", userID)

	req := tarot.ReadingRequest{
		Type:             "daily",
		UserID:           userID,
		Enhance:          h.deps.Config.Gemini.Enabled,
		IncludeReversals: h.deps.Config.Reading.IncludeReversals,
		Language:         h.deps.Config.Reading.DefaultLanguage,
	}
	applyProfilePreferences(ctx, h.deps, userID, &req)

	runReading(ctx, b, h.deps, log, chatID, userID, req)
}
