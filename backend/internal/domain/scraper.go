// backend/internal/domain/scraper.go
package domain

import "context"

// Scraper produces the records of one run.
type Scraper interface {
	Run(ctx context.Context) (RunResult, error)
}

// SkippedListing is a detail page that could not be turned into a record.
type SkippedListing struct {
	URL string
	Err error
}

// RunResult is the outcome of a run that reached the start page.
// Records keep the discovery order of their listings.
type RunResult struct {
	Listings int
	Records  []Record
	Skipped  []SkippedListing
}
