// Package config provides configuration loading, validation, and defaults
// for the Arcana bot. It reads a YAML file layered over defaults, with
// BOT_* environment variables taking precedence over both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration wraps every configuration loading or validation failure.
var ErrConfiguration = errors.New("configuration error")

// BotInfo holds the bot identity retrieved from Telegram at startup. It is
// filled in at runtime, never from the config file.
type BotInfo struct {
	ID        int64
	Username  string
	FirstName string
}

// LoggerConfig controls structured logging output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the chat transport settings.
type TelegramConfig struct {
	Token       string `mapstructure:"token"         validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`
	AdminChatID int64  `mapstructure:"admin_chat_id"`

	BotInfo BotInfo `mapstructure:"-"`
}

// GeminiConfig holds the AI enhancement settings.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	ModelName         string  `mapstructure:"model_name"          validate:"required"`
	Temperature       float32 `mapstructure:"temperature"         validate:"min=0,max=2"`
	SystemInstruction string  `mapstructure:"system_instruction"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"min=0,max=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=1,max=60"`
	Enabled           bool    `mapstructure:"enabled"`
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// ReadingConfig holds the defaults applied to reading requests.
type ReadingConfig struct {
	IncludeReversals bool   `mapstructure:"include_reversals"`
	HistoryLimit     int    `mapstructure:"history_limit" validate:"min=1,max=50"`
	DefaultLanguage  string `mapstructure:"default_language"`
}

// TaskConfig configures one scheduled task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// MessagesConfig holds the user-facing boilerplate strings.
type MessagesConfig struct {
	Welcome       string `mapstructure:"welcome"`
	Help          string `mapstructure:"help"`
	NotAuthorized string `mapstructure:"not_authorized"`
	GeneralError  string `mapstructure:"general_error"`
	ReadingFailed string `mapstructure:"reading_failed"`
	HistoryEmpty  string `mapstructure:"history_empty"`
	ProfileSaved  string `mapstructure:"profile_saved"`
	ProfileEmpty  string `mapstructure:"profile_empty"`
	ResetDone     string `mapstructure:"reset_done"`
	MaintDone     string `mapstructure:"maintenance_done"`
}

// Config is the root configuration for all components.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Reading   ReadingConfig   `mapstructure:"reading"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoadConfig reads the configuration file at path, applies defaults and
// BOT_* environment overrides, and validates the result. A missing config
// file is not an error; defaults plus environment must then satisfy
// validation.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	// Empty defaults so AutomaticEnv can surface these keys when no
	// config file is present.
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_user_id", 0)
	v.SetDefault("telegram.admin_chat_id", 0)
	v.SetDefault("gemini.api_key", "")

	v.SetDefault("database.path", "arcana.db")

	v.SetDefault("gemini.model_name", "gemini-2.0-flash")
	v.SetDefault("gemini.temperature", 0.9)
	v.SetDefault("gemini.max_retries", 2)
	v.SetDefault("gemini.retry_delay_seconds", 2)
	v.SetDefault("gemini.enabled", true)
	v.SetDefault("gemini.system_instruction",
		"You are a warm, grounded tarot reader. Rewrite the provided reading in an engaging, personal voice without inventing cards that are not in it.")

	v.SetDefault("reading.include_reversals", true)
	v.SetDefault("reading.history_limit", 5)
	v.SetDefault("reading.default_language", "en")

	v.SetDefault("messages.welcome", "Welcome, seeker. Use /reading for a full reading, /daily for today's card, or /help to see everything I can do.")
	v.SetDefault("messages.help", "Commands:\n/reading [love|career|health|general] [question] - full reading\n/daily - single card for today\n/quick [question] - three cards, no frills\n/history - your recent readings\n/stats - reading statistics\n/profile - show your profile\n/setprofile <field> <value> - update your profile")
	v.SetDefault("messages.not_authorized", "You are not authorized to use this command.")
	v.SetDefault("messages.general_error", "Something went wrong. Please try again later.")
	v.SetDefault("messages.reading_failed", "I could not complete this type of reading. Try a different spread or reading type.")
	v.SetDefault("messages.history_empty", "No readings recorded yet. Ask for one with /reading.")
	v.SetDefault("messages.profile_saved", "Your profile has been updated.")
	v.SetDefault("messages.profile_empty", "No profile on record yet. Set one with /setprofile.")
	v.SetDefault("messages.reset_done", "All stored readings and profiles have been deleted.")
	v.SetDefault("messages.maintenance_done", "Database maintenance completed.")

	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", "0 0 4 * * *")
	v.SetDefault("scheduler.tasks.daily_card.enabled", false)
	v.SetDefault("scheduler.tasks.daily_card.schedule", "0 0 9 * * *")
}
