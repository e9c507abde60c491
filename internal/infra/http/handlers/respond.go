package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/horsepowerelectrical/horsepower-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeUseCaseError translates the error taxonomy into HTTP. Underlying
// causes are logged where they happen; the client only sees the generic
// message.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		writeJSON(w, statusForCode(de.Code), map[string]string{"error": de.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeUnauthorized:
		return http.StatusUnauthorized
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeConflict:
		return http.StatusConflict
	case usecase.CodeInvalidRequest, usecase.CodeInvalidCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
