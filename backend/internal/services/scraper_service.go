// internal/services/scraper_service.go
package services

import (
	"context"
	"fmt"

	"github.com/ps-vitor/setam-sys/backend/internal/domain"
	"github.com/ps-vitor/setam-sys/backend/internal/repositories"
	"github.com/ps-vitor/setam-sys/backend/pkg/logger"
)

type ScraperService struct {
	scraper domain.Scraper
	repo    repositories.RecordRepository
	log     *logger.Logger
}

func NewScraperService(scraper domain.Scraper, repo repositories.RecordRepository, log *logger.Logger) *ScraperService {
	if log == nil {
		log = logger.Discard()
	}
	return &ScraperService{scraper: scraper, repo: repo, log: log}
}

// ScrapeAndStore runs the scraper and writes whatever it produced, including
// an empty result. A failed run writes nothing.
func (s *ScraperService) ScrapeAndStore(ctx context.Context) (domain.RunResult, error) {
	result, err := s.scraper.Run(ctx)
	if err != nil {
		return result, err
	}
	if err := s.repo.Save(ctx, result.Records); err != nil {
		return result, fmt.Errorf("save records: %w", err)
	}
	s.log.Info("records stored", "records", len(result.Records), "skipped", len(result.Skipped))
	return result, nil
}
