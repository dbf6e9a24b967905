package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bankwatch/backend/internal/alerts"
	"github.com/bankwatch/backend/internal/config"
	"github.com/bankwatch/backend/internal/mail"
	"github.com/bankwatch/backend/internal/models"
	"github.com/bankwatch/backend/internal/provider"
	"github.com/bankwatch/backend/internal/reports"
	"github.com/bankwatch/backend/internal/router"
	"github.com/bankwatch/backend/internal/schedule"
	"github.com/bankwatch/backend/internal/synchronizer"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	// Create the data directory for the sqlite database
	if !strings.HasPrefix(cfg.DSN, "host=") {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), os.ModePerm); err != nil {
			log.Fatal().Err(err).Msg("could not create data directory")
		}
	}

	if err := models.Connect(cfg.DSN); err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}

	// Seed the classification lookup tables and build the immutable
	// provider id mapping
	for _, entry := range provider.Types() {
		if err := models.UpsertOperationType(models.DB, entry.ProviderID, entry.Name); err != nil {
			log.Fatal().Err(err).Msg("could not seed operation types")
		}
	}

	for _, entry := range provider.Categories() {
		if err := models.UpsertCategory(models.DB, entry.ProviderID, entry.Name); err != nil {
			log.Fatal().Err(err).Msg("could not seed categories")
		}
	}

	typeMap, err := models.LoadTypeMap(models.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load operation type map")
	}

	mailer := mail.New(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	})

	evaluator := alerts.NewEvaluator(models.DB, mailer)
	engine := synchronizer.New(models.DB, provider.NewBridge(cfg.Provider.URL), evaluator, typeMap, cfg.Provider.Timeout)
	reporter := reports.NewManager(models.DB, mailer)

	synchronize := func() {
		engine.SynchronizeAll(context.Background())
	}

	// Both background services run once per day inside the jittered
	// window, independently of each other
	syncScheduler := schedule.New("synchronizer")
	reportScheduler := schedule.New("reports")

	log.Info().Msg("starting bank account polling")
	if models.BoolSetting(models.DB, models.SettingSyncOnStartup) {
		go syncScheduler.RunNow(synchronize)
	} else {
		syncScheduler.Schedule(synchronize)
	}

	log.Info().Msg("starting report manager")
	reportScheduler.Schedule(reporter.Run)

	r, err := router.Router(synchronize)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up router")
	}

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
