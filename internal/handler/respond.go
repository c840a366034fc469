package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mader-project/mader/internal/apperr"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// writeError maps the typed taxonomy onto fixed statuses and detail messages.
// Anything untyped is a 500 with a generic body.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		h.writeJSON(w, appErr.Status, errorBody{Detail: appErr.Detail})
		return
	}
	h.log.Errorf("Request failed: %v", err)
	h.writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "Internal server error"})
}

// pathID parses the named integer path variable.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, apperr.New(http.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
