// Package tasks implements the bot's scheduled background tasks: database
// maintenance and the daily card broadcast.
package tasks

import (
	"log/slog"

	"github.com/go-telegram/bot"

	"github.com/tmajeur/arcanabot/internal/config"
	"github.com/tmajeur/arcanabot/internal/database"
	"github.com/tmajeur/arcanabot/internal/tarot"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Reader *tarot.Reader
	Bot    *bot.Bot
	Config *config.Config
}
