package repository

import (
	"fmt"

	"github.com/mader-project/mader/internal/models"
)

// CreateBook inserts a new book and fills in the generated fields. A
// nonexistent novelist id surfaces as the raw foreign-key violation.
func (r *Repository) CreateBook(book *models.Book) error {
	query := `
		INSERT INTO books (id_novelist, title, year, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, book.IDNovelist, book.Title, book.Year).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", translate(err))
	}
	return nil
}

// FindBookByID retrieves a book by id.
func (r *Repository) FindBookByID(id int64) (*models.Book, error) {
	book := &models.Book{}
	query := `
		SELECT id, id_novelist, title, year, created_at, updated_at
		FROM books
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&book.ID, &book.IDNovelist, &book.Title, &book.Year, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return book, nil
}

// FindBookByTitle retrieves a book by exact title.
func (r *Repository) FindBookByTitle(title string) (*models.Book, error) {
	book := &models.Book{}
	query := `
		SELECT id, id_novelist, title, year, created_at, updated_at
		FROM books
		WHERE title = $1`
	err := r.db.QueryRow(query, title).
		Scan(&book.ID, &book.IDNovelist, &book.Title, &book.Year, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return book, nil
}

// ListBooks returns all books.
func (r *Repository) ListBooks() ([]models.Book, error) {
	return r.queryBooks(`
		SELECT id, id_novelist, title, year, created_at, updated_at
		FROM books
		ORDER BY id`)
}

// SearchBooks returns books matching the year whose title contains the
// fragment, case-insensitively.
func (r *Repository) SearchBooks(title string, year int) ([]models.Book, error) {
	return r.queryBooks(`
		SELECT id, id_novelist, title, year, created_at, updated_at
		FROM books
		WHERE title ILIKE $1 AND year = $2
		ORDER BY id`, "%"+title+"%", year)
}

func (r *Repository) queryBooks(query string, args ...interface{}) ([]models.Book, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.IDNovelist, &book.Title, &book.Year, &book.CreatedAt, &book.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// UpdateBook updates the mutable book fields and refreshes updated_at.
func (r *Repository) UpdateBook(book *models.Book) error {
	query := `
		UPDATE books
		SET id_novelist = $1, title = $2, year = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at`
	err := r.db.QueryRow(query, book.IDNovelist, book.Title, book.Year, book.ID).
		Scan(&book.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteBook removes a book; read associations cascade at the storage layer.
func (r *Repository) DeleteBook(id int64) error {
	result, err := r.db.Exec(`DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
