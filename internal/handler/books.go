package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/service"
)

type bookRequest struct {
	IDNovelist int64  `json:"id_novelist"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
}

type bookList struct {
	Books []models.Book `json:"books"`
}

// CreateBook stores a new book.
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}

	book, err := h.svc.CreateBook(req.IDNovelist, req.Title, req.Year)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, book)
}

// ListBooks returns all books.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookList{Books: books})
}

// GetBook returns one book by id.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "book_id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	book, err := h.svc.GetBook(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, book)
}

// SearchBooks filters books by title fragment and year.
func (h *Handler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid year"})
		return
	}

	books, err := h.svc.SearchBooks(vars["title"], year)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookList{Books: books})
}

// UpdateBook applies a partial update to a book.
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "book_id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var update service.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid request body"})
		return
	}

	book, err := h.svc.UpdateBook(id, update)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, book)
}

// DeleteBook removes a book.
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "book_id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.svc.DeleteBook(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.Message{Message: "Book deleted!"})
}

// ExportCatalog renders the catalog of novelists and books as XML.
func (h *Handler) ExportCatalog(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ExportCatalog()
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.log.Errorf("Failed to write catalog: %v", err)
	}
}
