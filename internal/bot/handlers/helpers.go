package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"

	"github.com/tmajeur/arcanabot/internal/database"
	"github.com/tmajeur/arcanabot/internal/tarot"
)

const (
	readingTimeout     = 3 * time.Minute
	sendMessageTimeout = 10 * time.Second
	dbSaveTimeout      = 5 * time.Second

	// Telegram's hard message limit, minus headroom for formatting.
	maxMessageLength = 4000
)

// FormatReading renders a completed reading for chat delivery.
func FormatReading(r *tarot.Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔮 %s reading, %s spread\n", titleCase(r.Type), strings.ReplaceAll(r.SpreadName, "_", " "))
	if r.Question != "" {
		fmt.Fprintf(&b, "Your question: %s\n", r.Question)
	}
	b.WriteString("\n")
	b.WriteString(r.Narrative)
	b.WriteString("\n\n~ Summary ~\n")
	b.WriteString(r.Summary)
	b.WriteString("\n\n~ Advice ~\n")
	b.WriteString(r.Advice)
	if r.AIEnhancedNarrative || r.AIEnhancedAdvice {
		b.WriteString("\n\n✨ Personalized by AI")
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SendChunked delivers text in pieces under Telegram's message limit,
// splitting on line boundaries where possible.
func SendChunked(ctx context.Context, b *bot.Bot, deps HandlerDeps, chatID int64, text string) {
	log := deps.Logger.With("helper", "send_chunked")

	for len(text) > 0 {
		chunk := text
		if len(chunk) > maxMessageLength {
			cut := strings.LastIndex(chunk[:maxMessageLength], "\n")
			if cut <= 0 {
				cut = maxMessageLength
			}
			chunk = chunk[:cut]
		}
		text = strings.TrimPrefix(text[len(chunk):], "\n")

		sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
		_, err := b.SendMessage(sendCtx, &bot.SendMessageParams{ChatID: chatID, Text: chunk})
		cancel()
		if err != nil {
			log.ErrorContext(ctx, "Failed to send message chunk", "error", err, "chat_id", chatID)
			return
		}
	}
}

// PersistReading saves a completed reading with a small retry loop.
// Persistence failure is logged, never surfaced to the user: the reading
// was already delivered.
func PersistReading(ctx context.Context, deps HandlerDeps, userID int64, r *tarot.Reading) {
	log := deps.Logger.With("helper", "persist_reading")

	rec, err := database.NewReadingRecord(userID, r)
	if err != nil {
		log.ErrorContext(ctx, "Failed to build reading record", "ref", r.Ref, "error", err)
		return
	}

	const maxRetries = 3
	for i := range maxRetries {
		if ctx.Err() != nil {
			log.WarnContext(ctx, "Context cancelled, aborting reading save", "ref", r.Ref, "attempt", i+1)
			return
		}

		dbCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
		err = deps.Store.SaveReading(dbCtx, rec)
		cancel()
		if err == nil {
			log.DebugContext(ctx, "Reading persisted", "ref", r.Ref, "user_id", userID)
			return
		}

		log.ErrorContext(ctx, "Failed to save reading, retrying", "ref", r.Ref, "error", err, "attempt", i+1)
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	log.ErrorContext(ctx, "Failed to save reading after retries", "ref", r.Ref, "error", err)
}
