package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerforge/resume-assistant/internal/app"
	"github.com/careerforge/resume-assistant/internal/pkg/config"
	"github.com/careerforge/resume-assistant/pkg/logger"
)

// @title                       Resume Assistant API
// @version                     1.0
// @description                 Tailors resumes and cover letters to a job description and tracks the results.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "resume-assistant",
		Env:     cfg.Env,
	})

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialise application")
	}

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
