package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewQuickHandler returns a handler for the /quick command, a three-card
// past/present/future reading without AI enhancement.
func NewQuickHandler(deps HandlerDeps) bot.HandlerFunc {
	return quickHandler{deps}.Handle
}

type quickHandler struct {
	deps HandlerDeps
}

func (h quickHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "quick")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Quick handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	question := ""
	if fields := strings.Fields(update.Message.Text); len(fields) > 1 {
		question = strings.Join(fields[1:], " ")
	}

	log.InfoContext(ctx, "Handling /quick command", "chat_id", chatID, "user_id", userID)

	readCtx, cancel := context.WithTimeout(ctx, readingTimeout)
	defer cancel()

	reading, err := h.deps.Reader.PerformQuickReading(readCtx, "quick", question, h.deps.Config.Reading.IncludeReversals)
	if err != nil {
		log.ErrorContext(ctx, "Failed to perform quick reading", "error", err, "user_id", userID)
		_, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.ReadingFailed})
		if sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	SendChunked(ctx, b, h.deps, chatID, FormatReading(reading))
	PersistReading(ctx, h.deps, userID, reading)
}
