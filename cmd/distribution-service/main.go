package main

import (
	"fmt"
	"os"

	"distribution-service/internal/auth"
	"distribution-service/internal/config"
	"distribution-service/internal/db"
	httphandler "distribution-service/internal/http"
	"distribution-service/internal/http/middleware"
	"distribution-service/internal/logger"
	"distribution-service/internal/repository"
	"distribution-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	stationRepo := repository.NewStationRepository(database)
	distributionRepo := repository.NewDistributionRepository(database)
	pumpRepo := repository.NewPumpRepository(database)

	stationService := service.NewStationService(stationRepo)
	reportService := service.NewReportService(
		stationRepo, distributionRepo, pumpRepo,
		cfg.Dashboard.DailyWindowDays, cfg.Dashboard.MonthlyWindowMonths,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(
		stationService, reportService,
		cfg.History.DefaultPageSize, cfg.History.MaxPageSize,
		appLogger,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting distribution service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
