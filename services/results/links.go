package results

import (
	"fmt"
	"net/url"
)

// PlotLink is one plot kind and the URL serving it for a trigger.
type PlotLink struct {
	PlotType string
	URL      string
}

// TriggerLinks associates a trigger with the URLs of all its views.
type TriggerLinks struct {
	TriggerID  string
	CatalogURL string
	SourcesURL string
	Plots      []PlotLink
}

// CatalogURL builds the catalog endpoint URL for a trigger.
func CatalogURL(baseURL, triggerID string) string {
	return fmt.Sprintf("%s/catalog/?triggerID=%s", baseURL, url.QueryEscape(triggerID))
}

// SourcesURL builds the source-summary endpoint URL for a trigger.
func SourcesURL(baseURL, triggerID string) string {
	return fmt.Sprintf("%s/sources/?triggerID=%s", baseURL, url.QueryEscape(triggerID))
}

// PlotURL builds the plot endpoint URL for a trigger and plot kind.
func PlotURL(baseURL, triggerID, plotType string) string {
	return fmt.Sprintf("%s/plots/?triggerID=%s&plot_type=%s",
		baseURL, url.QueryEscape(triggerID), url.QueryEscape(plotType))
}

// TriggersURL builds the trigger-listing endpoint URL.
func TriggersURL(baseURL string) string {
	return baseURL + "/triggers/"
}

// LinkTable composes, for each trigger, the links to its catalog, its
// source summary, and every known plot kind. Pure composition: no I/O
// beyond the discovery the caller already performed.
func LinkTable(baseURL string, triggerIDs []string) []TriggerLinks {
	table := make([]TriggerLinks, 0, len(triggerIDs))
	for _, id := range triggerIDs {
		row := TriggerLinks{
			TriggerID:  id,
			CatalogURL: CatalogURL(baseURL, id),
			SourcesURL: SourcesURL(baseURL, id),
		}
		for _, plotType := range AllPlotTypes() {
			row.Plots = append(row.Plots, PlotLink{
				PlotType: plotType,
				URL:      PlotURL(baseURL, id, plotType),
			})
		}
		table = append(table, row)
	}
	return table
}
