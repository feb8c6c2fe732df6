package handlers

import (
	"net/http"

	"github.com/rcet-nz/rteqc-api/services"
	"github.com/rcet-nz/rteqc-api/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to HTTP responses. Every failure
// kind gets a distinct status code; an error is never folded into a 200.
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	details := services.GetErrorDetails(err)

	switch {
	case services.IsValidationError(err):
		if err := utils.WriteBadRequest(w, err.Error(), details); err != nil {
			logger.Error("failed to write bad request response", zap.Error(err))
		}

	case services.IsNotFoundError(err):
		if err := utils.WriteNotFound(w, err.Error(), details); err != nil {
			logger.Error("failed to write not found response", zap.Error(err))
		}

	case services.IsUnavailableError(err):
		logger.Error("resource unavailable", zap.Error(err))
		if err := utils.WriteServiceUnavailable(w, err.Error()); err != nil {
			logger.Error("failed to write unavailable response", zap.Error(err))
		}

	case services.IsParseError(err):
		// The file exists but is not valid tabular data; log the specifics,
		// return a generic message.
		logger.Error("result file failed to parse", zap.Error(err))
		if err := utils.WriteInternalServerError(w, "Result file could not be parsed"); err != nil {
			logger.Error("failed to write parse error response", zap.Error(err))
		}

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		if err := utils.WriteInternalServerError(w, "An unexpected error occurred"); err != nil {
			logger.Error("failed to write internal error response", zap.Error(err))
		}
	}
}

// HandleValidationError handles validation errors from request parsing
func HandleValidationError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if utils.IsValidationError(err) {
		fields := utils.GetValidationFields(err)
		details := make(map[string]interface{})
		for k, v := range fields {
			details[k] = v
		}
		if err := utils.WriteBadRequest(w, "Validation failed", details); err != nil {
			logger.Error("failed to write validation error response", zap.Error(err))
		}
		return
	}

	if err := utils.WriteBadRequest(w, err.Error(), nil); err != nil {
		logger.Error("failed to write validation error response", zap.Error(err))
	}
}
