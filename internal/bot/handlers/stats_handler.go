package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStatsHandler returns a handler for the /stats command.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stats handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /stats command", "chat_id", chatID, "user_id", update.Message.From.ID)

	stats := h.deps.Reader.Stats()

	var stored int64
	dbCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
	stored, err := h.deps.Store.CountReadings(dbCtx)
	cancel()
	if err != nil {
		log.WarnContext(ctx, "Failed to count stored readings", "error", err)
		stored = -1
	}

	var sb strings.Builder
	sb.WriteString("📊 Reading statistics\n\n")
	fmt.Fprintf(&sb, "Readings this session: %d\n", stats.TotalReadings)
	if stored >= 0 {
		fmt.Fprintf(&sb, "Readings stored overall: %d\n", stored)
	}
	if stats.TotalReadings > 0 {
		fmt.Fprintf(&sb, "Average cards per reading: %.1f\n", stats.AverageCardsPerRead)
		sb.WriteString("\nBy type:\n")
		for _, k := range sortedKeys(stats.ReadingTypes) {
			fmt.Fprintf(&sb, "  %s: %d\n", k, stats.ReadingTypes[k])
		}
		sb.WriteString("By spread:\n")
		for _, k := range sortedKeys(stats.SpreadTypes) {
			fmt.Fprintf(&sb, "  %s: %d\n", strings.ReplaceAll(k, "_", " "), stats.SpreadTypes[k])
		}
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send stats message", "error", err, "chat_id", chatID)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
