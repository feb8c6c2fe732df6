package handlers

import (
	"fmt"
	"net/http"

	"github.com/rcet-nz/rteqc-api/middleware"
	"github.com/rcet-nz/rteqc-api/services/tabular"
	"github.com/rcet-nz/rteqc-api/utils"
	"go.uber.org/zap"
)

// TableRequest carries the query parameters of the catalog and sources
// endpoints
type TableRequest struct {
	TriggerID string `validate:"required"`
}

// CatalogHandler handles catalog and source-summary HTTP requests
type CatalogHandler struct {
	svc    ResultsService
	logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(svc ResultsService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc:    svc,
		logger: logger,
	}
}

// HandleCatalog handles GET /catalog/?triggerID=<id>
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	req := TableRequest{TriggerID: r.URL.Query().Get("triggerID")}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	table, err := h.svc.Catalog(req.TriggerID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.writeTable(w, r, table, fmt.Sprintf("%s_catalog.json", req.TriggerID))
}

// HandleSources handles GET /sources/?triggerID=<id>
func (h *CatalogHandler) HandleSources(w http.ResponseWriter, r *http.Request) {
	req := TableRequest{TriggerID: r.URL.Query().Get("triggerID")}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	table, err := h.svc.Sources(req.TriggerID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.writeTable(w, r, table, fmt.Sprintf("%s_source.json", req.TriggerID))
}

func (h *CatalogHandler) writeTable(w http.ResponseWriter, r *http.Request, table *tabular.Table, filename string) {
	requestID := middleware.GetRequestIDFromContext(r.Context())

	utils.SetAttachment(w, filename)
	if err := utils.WriteJSON(w, http.StatusOK, tabular.ToWire(table)); err != nil {
		h.logger.Error("failed to write table response",
			zap.String("request_id", requestID),
			zap.Error(err))
	}
}
