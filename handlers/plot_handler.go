package handlers

import (
	"net/http"

	"github.com/rcet-nz/rteqc-api/utils"
	"go.uber.org/zap"
)

// PlotRequest carries the query parameters of the plot endpoint
type PlotRequest struct {
	TriggerID string `validate:"required"`
	PlotType  string `validate:"required"`
}

// PlotHandler handles plot image HTTP requests
type PlotHandler struct {
	svc    ResultsService
	logger *zap.Logger
}

// NewPlotHandler creates a new PlotHandler
func NewPlotHandler(svc ResultsService, logger *zap.Logger) *PlotHandler {
	return &PlotHandler{
		svc:    svc,
		logger: logger,
	}
}

// HandlePlot handles GET /plots/?triggerID=<id>&plot_type=<kind>
func (h *PlotHandler) HandlePlot(w http.ResponseWriter, r *http.Request) {
	req := PlotRequest{
		TriggerID: r.URL.Query().Get("triggerID"),
		PlotType:  r.URL.Query().Get("plot_type"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	path, err := h.svc.PlotFile(req.TriggerID, req.PlotType)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Debug("serving plot",
		zap.String("trigger_id", req.TriggerID),
		zap.String("plot_type", req.PlotType),
		zap.String("path", path))

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}
