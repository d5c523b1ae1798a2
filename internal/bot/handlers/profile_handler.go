package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewProfileHandler returns a handler for the /profile command, showing
// the caller's stored reading preferences.
func NewProfileHandler(deps HandlerDeps) bot.HandlerFunc {
	return profileHandler{deps}.Handle
}

type profileHandler struct {
	deps HandlerDeps
}

func (h profileHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "profile")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Profile handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	log.InfoContext(ctx, "Handling /profile command", "chat_id", chatID, "user_id", userID)

	dbCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
	defer cancel()

	profile, err := h.deps.Store.GetUserProfile(dbCtx, userID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load user profile", "error", err, "user_id", userID)
		_, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.GeneralError})
		if sendErr != nil {
			log.ErrorContext(ctx, "Failed to send error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	if profile == nil {
		_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.ProfileEmpty})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send empty profile message", "error", err, "chat_id", chatID)
		}
		return
	}

	var sb strings.Builder
	sb.WriteString("👤 Your profile\n\n")
	writeField := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s: %s\n", label, value)
		}
	}
	writeField("Gender", profile.Gender)
	writeField("Age group", profile.AgeGroup)
	writeField("Emotional state", profile.EmotionalState)
	writeField("Relationship", profile.RelationshipStatus)
	writeField("Career field", profile.CareerField)
	writeField("Spiritual beliefs", profile.SpiritualBeliefs)
	writeField("Language", profile.Language)
	fmt.Fprintf(&sb, "Reversed cards: %s\n", onOff(profile.IncludeReversals))

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send profile message", "error", err, "chat_id", chatID)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
