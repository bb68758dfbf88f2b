package httpview

import (
	"encoding/json"
	"errors"
	"net/http"

	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/logger"

	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondFailure renders a backend or local failure inline on the
// current view. Nothing is retried and nothing escalates past here.
func respondFailure(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		respondError(w, apiErr.Status, apiErr.Message)
		return
	}
	respondError(w, http.StatusBadGateway, "backend unreachable")
}
