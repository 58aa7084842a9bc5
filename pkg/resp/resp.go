package resp

import (
	"encoding/json"
	"errors"
	"net/http"

	"studyhub_backend/internal/model"
)

// WriteJSONResponse - пишет JSON ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError - мапит ошибку сервисного слоя на статус код.
// Наружу уходит общий текст, детали остаются в логах
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		WriteJSONResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	case errors.Is(err, model.ErrUnauthenticated):
		WriteJSONResponse(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	case errors.Is(err, model.ErrNotFound):
		WriteJSONResponse(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		WriteJSONResponse(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
