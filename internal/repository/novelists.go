package repository

import (
	"fmt"

	"github.com/mader-project/mader/internal/models"
)

// CreateNovelist inserts a new novelist and fills in the generated fields.
func (r *Repository) CreateNovelist(novelist *models.Novelist) error {
	query := `
		INSERT INTO novelists (name, created_at, updated_at)
		VALUES ($1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, novelist.Name).
		Scan(&novelist.ID, &novelist.CreatedAt, &novelist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create novelist: %w", translate(err))
	}
	return nil
}

// FindNovelistByID retrieves a novelist by id.
func (r *Repository) FindNovelistByID(id int64) (*models.Novelist, error) {
	novelist := &models.Novelist{}
	query := `
		SELECT id, name, created_at, updated_at
		FROM novelists
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&novelist.ID, &novelist.Name, &novelist.CreatedAt, &novelist.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return novelist, nil
}

// FindNovelistByName retrieves a novelist by exact name.
func (r *Repository) FindNovelistByName(name string) (*models.Novelist, error) {
	novelist := &models.Novelist{}
	query := `
		SELECT id, name, created_at, updated_at
		FROM novelists
		WHERE name = $1`
	err := r.db.QueryRow(query, name).
		Scan(&novelist.ID, &novelist.Name, &novelist.CreatedAt, &novelist.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return novelist, nil
}

// ListNovelists returns all novelists.
func (r *Repository) ListNovelists() ([]models.Novelist, error) {
	return r.queryNovelists(`
		SELECT id, name, created_at, updated_at
		FROM novelists
		ORDER BY id`)
}

// SearchNovelistsByName returns novelists whose name contains the fragment,
// case-insensitively.
func (r *Repository) SearchNovelistsByName(name string) ([]models.Novelist, error) {
	return r.queryNovelists(`
		SELECT id, name, created_at, updated_at
		FROM novelists
		WHERE name ILIKE $1
		ORDER BY id`, "%"+name+"%")
}

func (r *Repository) queryNovelists(query string, args ...interface{}) ([]models.Novelist, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query novelists: %w", err)
	}
	defer rows.Close()

	novelists := []models.Novelist{}
	for rows.Next() {
		var novelist models.Novelist
		if err := rows.Scan(&novelist.ID, &novelist.Name, &novelist.CreatedAt, &novelist.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan novelist: %w", err)
		}
		novelists = append(novelists, novelist)
	}
	return novelists, rows.Err()
}

// UpdateNovelist renames a novelist and refreshes updated_at.
func (r *Repository) UpdateNovelist(novelist *models.Novelist) error {
	query := `
		UPDATE novelists
		SET name = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING updated_at`
	err := r.db.QueryRow(query, novelist.Name, novelist.ID).
		Scan(&novelist.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeleteNovelist removes a novelist; its books cascade at the storage layer.
func (r *Repository) DeleteNovelist(id int64) error {
	result, err := r.db.Exec(`DELETE FROM novelists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete novelist: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete novelist: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
