package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"

	"github.com/tmajeur/arcanabot/internal/tarot"
)

// newDailyCardTask creates the scheduled task that draws a single card
// each morning and posts it to the configured announcement chat.
func newDailyCardTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_card")

	return func(ctx context.Context) error {
		chatID := deps.Config.Telegram.AdminChatID
		if chatID == 0 {
			log.WarnContext(ctx, "Daily card task skipped, no announcement chat configured")
			return nil
		}

		reading, err := deps.Reader.PerformReading(ctx, tarot.ReadingRequest{
			Type:             "daily",
			IncludeReversals: deps.Config.Reading.IncludeReversals,
			Language:         deps.Config.Reading.DefaultLanguage,
		})
		if err != nil {
			log.ErrorContext(ctx, "Daily card reading failed", "error", err)
			return fmt.Errorf("daily card reading failed: %w", err)
		}

		var sb strings.Builder
		sb.WriteString("🌅 Card of the day\n\n")
		if len(reading.Interpretations) > 0 {
			card := reading.Interpretations[0]
			fmt.Fprintf(&sb, "%s (%s)\n\n", card.CardName, card.OrientationLabel)
		}
		sb.WriteString(reading.Narrative)
		sb.WriteString("\n\n")
		sb.WriteString(reading.Advice)

		_, err = deps.Bot.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
		if err != nil {
			log.ErrorContext(ctx, "Failed to post daily card", "error", err, "chat_id", chatID)
			return fmt.Errorf("failed to post daily card: %w", err)
		}

		log.InfoContext(ctx, "Posted daily card", "ref", reading.Ref, "chat_id", chatID)
		return nil
	}
}
