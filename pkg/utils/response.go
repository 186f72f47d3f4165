package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight-backend/internal/apperrors"
)

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Error maps an application error onto its HTTP status and writes the
// JSON error body. Unrecognized errors become a generic 500.
func Error(w http.ResponseWriter, err error) {
	var ve *apperrors.ValidationError
	var fe *apperrors.ForbiddenError
	var ce *apperrors.ConflictError

	switch {
	case errors.As(err, &ve):
		JSON(w, http.StatusBadRequest, errorBody{Error: ve.Message, Field: ve.Field})
	case errors.As(err, &fe):
		JSON(w, http.StatusForbidden, errorBody{Error: fe.Reason})
	case errors.As(err, &ce):
		JSON(w, http.StatusBadRequest, errorBody{Error: ce.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		JSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		JSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		JSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	default:
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
