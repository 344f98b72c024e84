// backend/internal/api/handlers/scraping.go

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ps-vitor/setam-sys/backend/internal/api/models"
	"github.com/ps-vitor/setam-sys/backend/internal/domain"
	collector "github.com/ps-vitor/setam-sys/backend/internal/scraping/collectors/setam"
	"github.com/ps-vitor/setam-sys/backend/pkg/logger"
)

// Scraper is satisfied by services.ScraperService.
type Scraper interface {
	ScrapeAndStore(ctx context.Context) (domain.RunResult, error)
}

type ScrapingHandler struct {
	scraperService Scraper
	log            *logger.Logger
}

func NewScrapingHandler(svc Scraper, log *logger.Logger) *ScrapingHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &ScrapingHandler{scraperService: svc, log: log}
}

// HandleScrape runs a scrape. An unreachable site answers 502 so it can be
// told apart from a run that found no listings.
func (h *ScrapingHandler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	result, err := h.scraperService.ScrapeAndStore(r.Context())
	switch {
	case errors.Is(err, collector.ErrSiteUnreachable):
		h.log.Warn("scrape failed", "err", err)
		writeError(w, http.StatusBadGateway, err)
		return
	case err != nil:
		h.log.Error("scrape failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewScrapeResponse(result))
}
