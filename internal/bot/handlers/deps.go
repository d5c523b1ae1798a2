package handlers

import (
	"log/slog"

	"github.com/tmajeur/arcanabot/internal/config"
	"github.com/tmajeur/arcanabot/internal/database"
	"github.com/tmajeur/arcanabot/internal/tarot"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Store  database.Store
	Reader *tarot.Reader
}
