package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"voicelog/internal/clock"
	"voicelog/internal/config"
	"voicelog/internal/database"
	"voicelog/internal/discord"
	"voicelog/internal/recorder"
	"voicelog/internal/sheets"
	"voicelog/internal/tracker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Local durable log: file plus console
	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file %s: %v", cfg.LogFile, err)
	}
	defer logFile.Close()
	logger := log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags)

	logger.Printf("SPREADSHEET_ID: %s", checkmark(cfg.SpreadsheetID != ""))
	logger.Printf("SERVICE_ACCOUNT_JSON_BASE64: %s", checkmark(cfg.ServiceAccountJSONBase64 != ""))
	logger.Printf("DATABASE_DSN: %s", checkmark(cfg.DatabaseDSN != ""))
	if !cfg.HasSheets() {
		logger.Println("⚠️ spreadsheet configuration incomplete, remote writes will fail per event")
	}

	// Optional Postgres event history
	var history recorder.History
	if cfg.DatabaseDSN != "" {
		db, err := database.New(cfg.DatabaseDSN)
		if err != nil {
			logger.Printf("⚠️ event history disabled: %v", err)
		} else {
			defer db.Close()
			repo := database.NewRepository(db)
			history = repo
			if events, err := repo.RecentEvents(1); err != nil {
				logger.Printf("⚠️ event history read check failed: %v", err)
			} else if len(events) > 0 {
				last := events[0]
				logger.Printf("event history online, last record: %s %s %s", last.Date, last.DisplayName, last.Channel)
			} else {
				logger.Println("event history online, no records yet")
			}
		}
	}

	clk, err := clock.New(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	opener := sheets.NewOpener(sheets.Config{
		SpreadsheetID:     cfg.SpreadsheetID,
		CredentialsBase64: cfg.ServiceAccountJSONBase64,
		SheetName:         cfg.SheetName,
	})

	// Startup connectivity check; per-event writes re-open their own handle.
	if cfg.HasSheets() {
		if _, err := opener.Open(context.Background()); err != nil {
			logger.Printf("❌ Google Sheets connection failed: %v", err)
		} else {
			logger.Println("✅ Google Sheets connection successful")
		}
	}

	rec := recorder.New(clk, opener, history, logger)
	listener := recorder.NewListener(tracker.New(cfg.TrackedUsers), rec)

	// Initialize Discord bot
	bot, err := discord.New(cfg.DiscordToken, listener, logger)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}
	defer bot.Stop()

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Println("Shutting down bot...")
}

func checkmark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
