package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"braindump/config"
	_ "braindump/docs" // Swagger docs
	"braindump/internal/braindump/classifier"
	"braindump/internal/braindump/decision"
	"braindump/internal/braindump/executor"
	bdUsecase "braindump/internal/braindump/usecase"
	"braindump/internal/httpserver"
	"braindump/internal/middleware"
	userCached "braindump/internal/user/repository/cached"
	userSqlite "braindump/internal/user/repository/sqlite"
	userUsecase "braindump/internal/user/usecase"
	"braindump/pkg/datemath"
	"braindump/pkg/gcalendar"
	"braindump/pkg/log"
	"braindump/pkg/openai"
	"braindump/pkg/telegram"
)

// @title       Brain Dump API
// @description Voice-to-action backend: classifies transcribed Hebrew/English text into intents and turns them into calendar events, reminders, notes and more.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Brain Dump...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared clients
	llm, err := openai.New(openai.Config{
		APIKey: cfg.OpenAI.APIKey,
		Model:  cfg.OpenAI.Model,
		APIURL: cfg.OpenAI.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsJSON != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsJSON(ctx, []byte(cfg.GoogleCalendar.CredentialsJSON))
	} else {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	}
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar client: ", err)
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	dateMathParser, dtErr := datemath.NewParser(cfg.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. User domain: SQLite store behind an LRU cache
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open user database: ", err)
		return
	}
	defer db.Close()

	sqliteRepo, err := userSqlite.New(ctx, logger, db)
	if err != nil {
		logger.Error(ctx, "Failed to initialize user repository: ", err)
		return
	}
	userRepo, err := userCached.New(sqliteRepo)
	if err != nil {
		logger.Error(ctx, "Failed to initialize user cache: ", err)
		return
	}
	userUC := userUsecase.New(logger, userRepo, calendarClient)

	// 5. Brain dump pipeline
	intentClassifier := classifier.New(llm, logger)
	engine := decision.New(logger, dateMathParser, time.Now)
	dispatcher := executor.New(userUC, calendarClient, logger)
	brainDumpUC := bdUsecase.New(logger, intentClassifier, engine, dispatcher, dateMathParser, time.Now)

	// 6. Telegram channel (optional)
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)

		// Auto-detect ngrok when no webhook URL is configured
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram channel disabled")
	}

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.PerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		BrainDumpUC:     brainDumpUC,
		UserUC:          userUC,
		RegistrationURL: cfg.Registration.BaseURL,
		Bot:             bot,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
