package main

import (
	"fmt"
	"os"

	"github.com/nurpe/gigledger/internal/auth"
	"github.com/nurpe/gigledger/internal/config"
	"github.com/nurpe/gigledger/internal/db"
	"github.com/nurpe/gigledger/internal/excel"
	httphandler "github.com/nurpe/gigledger/internal/http"
	"github.com/nurpe/gigledger/internal/http/middleware"
	"github.com/nurpe/gigledger/internal/logger"
	"github.com/nurpe/gigledger/internal/pdf"
	"github.com/nurpe/gigledger/internal/repository"
	"github.com/nurpe/gigledger/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	ledgerRepo := repository.NewLedgerRepository(database)
	reportRepo := repository.NewReportRepository(database)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	ledgerService := service.NewLedgerService(ledgerRepo, cfg)
	reportService := service.NewReportService(reportRepo, excel.NewGenerator(), pdfGenerator, cfg)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(ledgerService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting gigledger service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
