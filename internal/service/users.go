package service

import (
	"errors"

	"github.com/mader-project/mader/internal/apperr"
	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/repository"
	"github.com/mader-project/mader/internal/security"
)

// Register creates a new user with a hashed password. Uniqueness is checked
// explicitly first so the response can name the colliding field; the storage
// constraint still backstops a race.
func (s *Service) Register(name, email, password string) (*models.User, error) {
	existing, err := s.store.FindUserByNameOrEmail(name, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Name == name {
			return nil, apperr.Conflict("Username already exists!")
		}
		return nil, apperr.Conflict("Email already exists!")
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, Password: hashed}
	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Username or Email already exists!")
		}
		return nil, err
	}

	if s.mailer != nil {
		// Off the request path; the sender logs its own failures.
		go func(to, name string) {
			_ = s.mailer.SendWelcome(to, name)
		}(user.Email, user.Name)
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// ListUsers returns all active users.
func (s *Service) ListUsers() ([]models.User, error) {
	return s.store.ListUsers()
}

// GetUser returns an active user by id.
func (s *Service) GetUser(id int64) (*models.User, error) {
	user, err := s.store.FindUserByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found!")
		}
		return nil, err
	}
	return user, nil
}

// EditUser updates a user's own record. The existence check runs before the
// ownership check so a missing target answers 404, not 403.
func (s *Service) EditUser(current *models.User, id int64, name, email, password string) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(current.ID, user.ID); err != nil {
		return nil, err
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	user.Password = hashed
	if err := s.store.UpdateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("Username or Email already exists!")
		}
		return nil, err
	}

	s.log.Infof("User updated: %d", user.ID)
	return user, nil
}

// DeleteUser deactivates a user's own record. The row is kept; the scheduled
// purge removes it after the retention window.
func (s *Service) DeleteUser(current *models.User, id int64) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if err := checkOwnership(current.ID, user.ID); err != nil {
		return err
	}

	if err := s.store.DeactivateUser(user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found!")
		}
		return err
	}

	s.log.Infof("User deactivated: %d", user.ID)
	return nil
}

// MarkBookRead adds a book to the authenticated user's read list. Repeating
// the call is a no-op.
func (s *Service) MarkBookRead(current *models.User, bookID int64) error {
	book, err := s.GetBook(bookID)
	if err != nil {
		return err
	}
	return s.store.MarkBookRead(current.ID, book.ID)
}
