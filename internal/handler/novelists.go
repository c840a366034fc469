package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mader-project/mader/internal/models"
)

type novelistRequest struct {
	Name string `json:"name"`
}

type novelistList struct {
	Novelists []models.Novelist `json:"novelists"`
}

// CreateNovelist stores a new novelist.
func (h *Handler) CreateNovelist(w http.ResponseWriter, r *http.Request) {
	var req novelistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}

	novelist, err := h.svc.CreateNovelist(req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, novelist)
}

// ListNovelists returns all novelists.
func (h *Handler) ListNovelists(w http.ResponseWriter, r *http.Request) {
	novelists, err := h.svc.ListNovelists()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, novelistList{Novelists: novelists})
}

// SearchNovelists filters novelists by name fragment.
func (h *Handler) SearchNovelists(w http.ResponseWriter, r *http.Request) {
	novelists, err := h.svc.SearchNovelists(mux.Vars(r)["name"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, novelistList{Novelists: novelists})
}

// GetNovelist returns one novelist by id.
func (h *Handler) GetNovelist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	novelist, err := h.svc.GetNovelist(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, novelist)
}

// EditNovelist renames a novelist.
func (h *Handler) EditNovelist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req novelistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}

	novelist, err := h.svc.EditNovelist(id, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, novelist)
}

// DeleteNovelist removes a novelist and their books.
func (h *Handler) DeleteNovelist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.DeleteNovelist(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.Message{Message: "Novelist deleted!"})
}
