package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/communityworks/grantledger/internal/config"
	"github.com/communityworks/grantledger/internal/export"
	"github.com/communityworks/grantledger/internal/funder"
	ledgerHttp "github.com/communityworks/grantledger/internal/http"
	exportHandler "github.com/communityworks/grantledger/internal/http/exportcsv"
	funderHandler "github.com/communityworks/grantledger/internal/http/funder"
	importHandler "github.com/communityworks/grantledger/internal/http/importcsv"
	recordHandler "github.com/communityworks/grantledger/internal/http/record"
	reportHandler "github.com/communityworks/grantledger/internal/http/report"
	"github.com/communityworks/grantledger/internal/importer"
	"github.com/communityworks/grantledger/internal/ledger"
	"github.com/communityworks/grantledger/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	funders, err := funder.ParseConfig(cfg.Funders)
	if err != nil {
		slog.Error("failed to parse funder config", "error", err)
		os.Exit(1)
	}

	var (
		ledgerService = ledger.NewService(store.New(), cfg.Ledger.DefaultYear)
		funderService = funder.NewService(funders)
		importService = importer.NewService()
		exportService = export.NewService()
	)

	var (
		recordH = recordHandler.NewHandler(ledgerService)
		importH = importHandler.NewHandler(importService, ledgerService)
		exportH = exportHandler.NewHandler(exportService, ledgerService, funderService)
		reportH = reportHandler.NewHandler(ledgerService, cfg.Ledger.TopN)
		funderH = funderHandler.NewHandler(funderService, ledgerService)
	)

	router := ledgerHttp.New(recordH, importH, exportH, reportH, funderH, ledgerHttp.Options{
		CORSOrigins: cfg.CORS.Origins,
		AuthSecret:  cfg.Auth.Secret,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "funders", len(funders))

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
