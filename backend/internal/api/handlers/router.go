package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/setam-sys/backend/pkg/logger"
)

// NewRouter wires the scraping and read endpoints.
func NewRouter(scraping *ScrapingHandler, api *APIHandler, log *logger.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger(log))
	api.RegisterRoutes(r)
	r.HandleFunc("/api/scrape", scraping.HandleScrape).Methods(http.MethodGet)
	return r
}
