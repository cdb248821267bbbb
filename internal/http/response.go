package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned in the failure envelope.
const (
	CodeBadRequest      = "bad_request"
	CodeNotFound        = "not_found"
	CodeRateLimited     = "rate_limited"
	CodeDataUnavailable = "data_unavailable"
	CodeExportFailed    = "export_failed"
	CodeInternal        = "internal_error"
)

type dataEnvelope struct {
	Data    any  `json:"data"`
	Success bool `json:"success"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: data, Success: true}); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Message: message, Code: code}); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
