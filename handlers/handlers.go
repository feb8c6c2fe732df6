// Package handlers contains the HTTP handlers for the results API. Handlers
// stay thin: query parsing and response shaping here, all filesystem logic
// in the services packages.
package handlers

import (
	"net/http"
	"strings"

	"github.com/rcet-nz/rteqc-api/services/tabular"
)

// ResultsService defines the interface for trigger result operations
type ResultsService interface {
	// Triggers lists the IDs of all runs with results on disk
	Triggers() ([]string, error)

	// Catalog loads the trigger's detected-event catalog
	Catalog(triggerID string) (*tabular.Table, error)

	// Sources loads the trigger's source-parameter summary
	Sources(triggerID string) (*tabular.Table, error)

	// PlotFile resolves and checks the path of a rendered plot
	PlotFile(triggerID, plotType string) (string, error)
}

// baseURL returns the absolute URL base for rendered links: the configured
// public URL when set, the request host otherwise.
func baseURL(publicURL string, r *http.Request) string {
	if publicURL != "" {
		return strings.TrimRight(publicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
