package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewMaintenanceHandler returns a handler for the /arc_maintenance
// command, running the same VACUUM/ANALYZE pass as the scheduled task.
func NewMaintenanceHandler(deps HandlerDeps) bot.HandlerFunc {
	return maintenanceHandler{deps}.Handle
}

type maintenanceHandler struct {
	deps HandlerDeps
}

func (h maintenanceHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "maintenance")

	if update.Message == nil || update.Message.From == nil {
		log.ErrorContext(ctx, "Maintenance handler called with nil Message or From", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Admin requested database maintenance", "chat_id", chatID, "user_id", update.Message.From.ID)

	timeoutCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	start := time.Now()
	if err := h.deps.Store.RunSQLMaintenance(timeoutCtx); err != nil {
		log.ErrorContext(ctx, "Database maintenance failed", "error", err, "chat_id", chatID)
		_, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.GeneralError})
		if sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	log.InfoContext(ctx, "Database maintenance completed", "duration", time.Since(start), "chat_id", chatID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.MaintDone})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send maintenance confirmation", "error", err, "chat_id", chatID)
	}
}
