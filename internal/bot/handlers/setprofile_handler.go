package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/tmajeur/arcanabot/internal/database"
)

const setProfileUsage = `Usage: /setprofile field value

Fields:
  gender, age, mood, relationship, career, beliefs
  reversals on|off
  language en|es|pt

Example: /setprofile mood hopeful`

// NewSetProfileHandler returns a handler for the /setprofile command.
// Each invocation updates a single profile field.
func NewSetProfileHandler(deps HandlerDeps) bot.HandlerFunc {
	return setProfileHandler{deps}.Handle
}

type setProfileHandler struct {
	deps HandlerDeps
}

func (h setProfileHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "setprofile")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "SetProfile handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	fields := strings.Fields(update.Message.Text)
	if len(fields) < 3 {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: setProfileUsage})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	field := strings.ToLower(fields[1])
	value := strings.Join(fields[2:], " ")
	log.InfoContext(ctx, "Handling /setprofile command", "chat_id", chatID, "user_id", userID, "field", field)

	dbCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
	defer cancel()

	profile, err := h.deps.Store.GetUserProfile(dbCtx, userID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load user profile", "error", err, "user_id", userID)
		h.sendError(ctx, b, log, chatID)
		return
	}
	if profile == nil {
		profile = &database.UserProfile{
			UserID:           userID,
			IncludeReversals: h.deps.Config.Reading.IncludeReversals,
			Language:         h.deps.Config.Reading.DefaultLanguage,
		}
	}

	if !applyProfileField(profile, field, value) {
		_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: setProfileUsage})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	if err := h.deps.Store.SaveUserProfile(dbCtx, profile); err != nil {
		log.ErrorContext(ctx, "Failed to save user profile", "error", err, "user_id", userID)
		h.sendError(ctx, b, log, chatID)
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.ProfileSaved})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send confirmation message", "error", err, "chat_id", chatID)
	}
}

// applyProfileField sets a single profile field from its command-line
// name. It reports false for an unknown field or unparseable value.
func applyProfileField(p *database.UserProfile, field, value string) bool {
	switch field {
	case "gender":
		p.Gender = value
	case "age":
		p.AgeGroup = value
	case "mood", "emotional_state":
		p.EmotionalState = value
	case "relationship":
		p.RelationshipStatus = value
	case "career":
		p.CareerField = value
	case "beliefs":
		p.SpiritualBeliefs = value
	case "reversals":
		switch strings.ToLower(value) {
		case "on", "true", "yes":
			p.IncludeReversals = true
		case "off", "false", "no":
			p.IncludeReversals = false
		default:
			return false
		}
	case "language":
		p.Language = strings.ToLower(value)
	default:
		return false
	}
	return true
}

func (h setProfileHandler) sendError(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.GeneralError})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send error message", "error", err, "chat_id", chatID)
	}
}
