package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Brain Dump specifics
	OpenAI         OpenAIConfig
	GoogleCalendar GoogleCalendarConfig
	Database       DatabaseConfig
	Telegram       TelegramConfig
	Registration   RegistrationConfig

	RateLimit RateLimitConfig

	// IANA timezone for interpreting bare times, e.g. "Asia/Jerusalem"
	Timezone string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	APIURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CredentialsJSON string // Inline JSON takes precedence over the file path
}

type DatabaseConfig struct {
	Path string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// RegistrationConfig controls the onboarding links returned to
// unregistered devices.
type RegistrationConfig struct {
	BaseURL string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.APIURL = viper.GetString("openai.api_url")
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" {
		cfg.OpenAI.APIKey = openaiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CredentialsJSON = viper.GetString("google_calendar.credentials_json")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if inline := os.Getenv("GOOGLE_CALENDAR_CREDENTIALS_JSON"); inline != "" {
		cfg.GoogleCalendar.CredentialsJSON = inline
	}

	// SQLite user store
	cfg.Database.Path = viper.GetString("database.path")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Registration links
	cfg.Registration.BaseURL = viper.GetString("registration.base_url")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	cfg.Timezone = viper.GetString("timezone")

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai api key not configured - set openai.api_key in config.yaml or OPENAI_API_KEY")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("database.path", "braindump.db")
	viper.SetDefault("registration.base_url", "https://braindump.example.com/register")
	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("timezone", "Asia/Jerusalem")
}
