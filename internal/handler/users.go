package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mader-project/mader/internal/middleware"
	"github.com/mader-project/mader/internal/models"
)

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *userRequest) valid() bool {
	return u.Name != "" && u.Email != "" && u.Password != ""
}

type userList struct {
	Users []models.User `json:"users"`
}

// Register creates a new user. The response never includes the password.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}

	user, err := h.svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, user)
}

// ListUsers returns all active users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, userList{Users: users})
}

// GetUser returns one active user by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.svc.GetUser(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// EditUser updates the authenticated user's own record.
func (h *Handler) EditUser(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.CurrentUser(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Detail: "Could not validate credentials"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}

	user, err := h.svc.EditUser(current, id, req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// DeleteUser deactivates the authenticated user's own record.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.CurrentUser(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Detail: "Could not validate credentials"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.DeleteUser(current, id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.Message{Message: "User deleted!"})
}

// MarkBookRead adds a book to the authenticated user's read list.
func (h *Handler) MarkBookRead(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.CurrentUser(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Detail: "Could not validate credentials"})
		return
	}

	bookID, err := pathID(r, "book_id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.MarkBookRead(current, bookID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, models.Message{Message: "Book added to the user book list!"})
}
