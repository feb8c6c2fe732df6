package handlers

import (
	"html/template"
	"net/http"

	"github.com/rcet-nz/rteqc-api/middleware"
	"github.com/rcet-nz/rteqc-api/services/results"
	"github.com/rcet-nz/rteqc-api/utils"
	"go.uber.org/zap"
)

// TriggerListResponse is the payload of GET /triggers/
type TriggerListResponse struct {
	TriggerIDs []string `json:"trigger_ids"`
}

// TriggerHandler handles trigger discovery HTTP requests
type TriggerHandler struct {
	svc       ResultsService
	publicURL string
	logger    *zap.Logger
}

// NewTriggerHandler creates a new TriggerHandler
func NewTriggerHandler(svc ResultsService, publicURL string, logger *zap.Logger) *TriggerHandler {
	return &TriggerHandler{
		svc:       svc,
		publicURL: publicURL,
		logger:    logger,
	}
}

// HandleListTriggers handles GET /triggers/
func (h *TriggerHandler) HandleListTriggers(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestIDFromContext(r.Context())

	triggerIDs, err := h.svc.Triggers()
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Debug("listed triggers",
		zap.String("request_id", requestID),
		zap.Int("count", len(triggerIDs)))

	utils.SetAttachment(w, "trigger_IDs.json")
	if err := utils.WriteJSON(w, http.StatusOK, TriggerListResponse{TriggerIDs: triggerIDs}); err != nil {
		h.logger.Error("failed to write trigger list", zap.Error(err))
	}
}

var triggerTableTmpl = template.Must(template.New("trigger_table").Parse(`<html>
    <head>
        <title>RCET RTEQcorrscan triggers</title>
    </head>
    <body>
        <h3>Available triggers:</h3>
        <table>
            <tr>
                <th>TriggerID</th>
                <th>Catalog-URL</th>
                <th>Sources-URL</th>
{{- range .PlotTypes}}
                <th>{{.}} URL</th>
{{- end}}
            </tr>
{{- range .Rows}}
            <tr>
                <td>{{.TriggerID}}</td>
                <td><a href="{{.CatalogURL}}">Catalog</a></td>
                <td><a href="{{.SourcesURL}}">Sources</a></td>
{{- range .Plots}}
                <td><a href="{{.URL}}">{{.PlotType}}_latest</a></td>
{{- end}}
            </tr>
{{- end}}
        </table>
    </body>
</html>
`))

// HandleTriggerTable handles GET /trigger_table/
func (h *TriggerHandler) HandleTriggerTable(w http.ResponseWriter, r *http.Request) {
	triggerIDs, err := h.svc.Triggers()
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	data := struct {
		PlotTypes []string
		Rows      []results.TriggerLinks
	}{
		PlotTypes: results.AllPlotTypes(),
		Rows:      results.LinkTable(baseURL(h.publicURL, r), triggerIDs),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := triggerTableTmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render trigger table", zap.Error(err))
	}
}
