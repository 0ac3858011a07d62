package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// pathID extracts the named path parameter and rejects values that are not
// well-formed UUIDs before they reach the store. On failure it writes the
// BadRequest response and reports false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if !validID(id) {
		respondError(r.Context(), w, http.StatusBadRequest, "invalid "+name)
		return "", false
	}
	return id, true
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
