package handler

import (
	"errors"
	"net/http"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

// writeStoreError maps store sentinel errors onto HTTP responses.
func writeStoreError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", message)
	case errors.Is(err, store.ErrConflict):
		respond.WriteError(w, http.StatusConflict, "CONFLICT", message)
	default:
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Unexpected error", err.Error())
	}
}
