// backend/cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ps-vitor/setam-sys/backend/internal/api/handlers"
	"github.com/ps-vitor/setam-sys/backend/internal/bootstrap"
	"github.com/ps-vitor/setam-sys/backend/internal/repositories"
	"github.com/ps-vitor/setam-sys/backend/internal/services"
	"github.com/ps-vitor/setam-sys/backend/internal/services/record"
)

func main() {
	cfg, logger, err := bootstrap.Load("", "")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup dependencies
	repo := repositories.NewXLSXRecordRepository(bootstrap.OutputPath)
	scraperSvc := services.NewScraperService(bootstrap.NewCollector(cfg, logger), repo, logger)
	scrapingHandler := handlers.NewScrapingHandler(scraperSvc, logger)
	apiHandler := handlers.NewAPIHandler(record.NewRecordService(repo))

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.App.Port),
		Handler:     handlers.NewRouter(scrapingHandler, apiHandler, logger),
		ReadTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown error", "err", err)
		}
	}()

	logger.Info("server running", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
