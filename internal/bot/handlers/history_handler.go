package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewHistoryHandler returns a handler for the /history command.
func NewHistoryHandler(deps HandlerDeps) bot.HandlerFunc {
	return historyHandler{deps}.Handle
}

type historyHandler struct {
	deps HandlerDeps
}

func (h historyHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "history")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "History handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	log.InfoContext(ctx, "Handling /history command", "chat_id", chatID, "user_id", userID)

	dbCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
	defer cancel()

	records, err := h.deps.Store.GetRecentReadings(dbCtx, userID, h.deps.Config.Reading.HistoryLimit)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load reading history", "error", err, "user_id", userID)
		_, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.GeneralError})
		if sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	if len(records) == 0 {
		_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.HistoryEmpty})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send empty history message", "error", err, "chat_id", chatID)
		}
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📜 Your last %d readings:\n\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(&sb, "%d. %s, %s spread, %d cards (%s)\n",
			i+1, rec.ReadingType, strings.ReplaceAll(rec.SpreadName, "_", " "),
			rec.CardCount, rec.CreatedAt.Format("2006-01-02 15:04"))
		if rec.Question != "" {
			fmt.Fprintf(&sb, "   Q: %s\n", rec.Question)
		}
	}

	SendChunked(ctx, b, h.deps, chatID, sb.String())
}
