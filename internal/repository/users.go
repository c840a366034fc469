package repository

import (
	"fmt"
	"time"

	"github.com/mader-project/mader/internal/models"
)

// CreateUser inserts a new user and fills in the generated fields.
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, active, created_at, updated_at`
	err := r.db.QueryRow(query, user.Name, user.Email, user.Password).
		Scan(&user.ID, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	return nil
}

// FindUserByEmail retrieves an active user by email.
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, password, active, created_at, updated_at
		FROM users
		WHERE email = $1 AND active`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// FindUserByID retrieves an active user by id.
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, password, active, created_at, updated_at
		FROM users
		WHERE id = $1 AND active`
	err := r.db.QueryRow(query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// FindUserByNameOrEmail retrieves any user (active or not) matching either
// unique field. Used by the registration pre-check, which must also see
// deactivated rows.
func (r *Repository) FindUserByNameOrEmail(name, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, password, active, created_at, updated_at
		FROM users
		WHERE name = $1 OR email = $2`
	err := r.db.QueryRow(query, name, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// ListUsers returns all active users.
func (r *Repository) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, name, email, password, active, created_at, updated_at
		FROM users
		WHERE active
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Active, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser updates the mutable user fields and refreshes updated_at.
func (r *Repository) UpdateUser(user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at`
	err := r.db.QueryRow(query, user.Name, user.Email, user.Password, user.ID).
		Scan(&user.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	return nil
}

// DeactivateUser flips the active flag instead of deleting the row.
func (r *Repository) DeactivateUser(id int64) error {
	query := `
		UPDATE users
		SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND active`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeInactiveUsers hard-deletes users deactivated before the cutoff. Read
// associations cascade at the storage layer.
func (r *Repository) PurgeInactiveUsers(cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM users
		WHERE NOT active AND updated_at < $1`
	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inactive users: %w", err)
	}
	return result.RowsAffected()
}

// MarkBookRead records that a user has read a book. Marking the same book
// twice is a no-op.
func (r *Repository) MarkBookRead(userID, bookID int64) error {
	query := `
		INSERT INTO read_books_association (user_id, book_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(query, userID, bookID); err != nil {
		return fmt.Errorf("failed to mark book as read: %w", err)
	}
	return nil
}
