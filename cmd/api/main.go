package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hiramlend/hiram/internal/agreement"
	agreementStore "github.com/hiramlend/hiram/internal/agreement/store"
	"github.com/hiramlend/hiram/internal/config"
	"github.com/hiramlend/hiram/internal/database"
	"github.com/hiramlend/hiram/internal/esign"
	hiramHttp "github.com/hiramlend/hiram/internal/http"
	agreementHandler "github.com/hiramlend/hiram/internal/http/agreement"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	client := esign.NewClient(cfg.Esign.BaseURL, cfg.Esign.APIKey)

	builder := agreement.NewBuilder(cfg.Esign.TemplateID, esign.Recipient{
		Email:     cfg.Esign.WitnessEmail,
		FirstName: cfg.Esign.WitnessName,
	})

	orchestrator := agreement.NewOrchestrator(client, builder, agreement.RetryPolicy{
		MaxAttempts:      cfg.Pipeline.SendMaxAttempts,
		Backoff:          cfg.Pipeline.SendBackoff,
		ConflictCooldown: cfg.Pipeline.ConflictCooldown,
		SettleDelay:      cfg.Pipeline.SettleDelay,
	})

	agreementService := agreement.NewService(
		agreementStore.New(db),
		orchestrator,
		agreement.PollPolicy{
			MaxAttempts: cfg.Pipeline.PollMaxAttempts,
			Interval:    cfg.Pipeline.PollInterval,
		},
		agreement.PollPolicy{
			MaxAttempts: 1,
			Interval:    cfg.Pipeline.DirectLendWait,
		},
	)

	router := hiramHttp.New(agreementHandler.NewHandler(agreementService))

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
