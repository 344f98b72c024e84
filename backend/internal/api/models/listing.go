// ./backend/api/models/listing.go

package models

import "github.com/ps-vitor/setam-sys/backend/internal/domain"

type Listing struct {
	Source  string        `json:"source"`
	Columns []domain.Pair `json:"columns"`
}

type SkippedListing struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

type ScrapeResponse struct {
	Listings int              `json:"listings"`
	Records  []Listing        `json:"records"`
	Skipped  []SkippedListing `json:"skipped"`
}

type RecordsResponse struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewScrapeResponse(result domain.RunResult) ScrapeResponse {
	resp := ScrapeResponse{
		Listings: result.Listings,
		Records:  make([]Listing, 0, len(result.Records)),
		Skipped:  make([]SkippedListing, 0, len(result.Skipped)),
	}
	for _, rec := range result.Records {
		resp.Records = append(resp.Records, Listing{Source: rec.Source.Value, Columns: rec.Pairs()})
	}
	for _, s := range result.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedListing{URL: s.URL, Error: s.Err.Error()})
	}
	return resp
}
