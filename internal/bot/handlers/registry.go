package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its match rules and middleware.
// It encapsulates all information needed to register and document a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all available bot commands.
// It configures each command with appropriate handlers and middleware.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	command := func(pattern string, h tgbot.HandlerFunc, mw ...tgbot.Middleware) RegisteredHandler {
		return RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     pattern,
			Handler:     h,
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  mw,
		}
	}

	handlers["/start"] = command("start", NewStartHandler(deps))
	handlers["/help"] = command("help", NewHelpHandler(deps))
	handlers["/reading"] = command("reading", NewReadingHandler(deps))
	handlers["/daily"] = command("daily", NewDailyHandler(deps))
	handlers["/quick"] = command("quick", NewQuickHandler(deps))
	handlers["/history"] = command("history", NewHistoryHandler(deps))
	handlers["/stats"] = command("stats", NewStatsHandler(deps))
	handlers["/profile"] = command("profile", NewProfileHandler(deps))
	handlers["/setprofile"] = command("setprofile", NewSetProfileHandler(deps))

	adminOnly := AdminOnly(deps)
	handlers["/arc_reset"] = command("arc_reset", NewResetHandler(deps), adminOnly)
	handlers["/arc_maintenance"] = command("arc_maintenance", NewMaintenanceHandler(deps), adminOnly)

	return handlers
}
