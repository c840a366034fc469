package service

import (
	"errors"

	"github.com/mader-project/mader/internal/apperr"
	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/repository"
	"github.com/mader-project/mader/internal/security"
)

// Login authenticates by email and password and returns a bearer token.
// Unknown email and bad password get the same answer so the response does not
// reveal whether an email is registered.
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.Unauthorized("Incorrect email or password!")
		}
		return "", err
	}

	if !security.VerifyPassword(password, user.Password) {
		return "", apperr.Unauthorized("Incorrect email or password!")
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, nil
}

// RefreshToken issues a fresh token for an already-authenticated user. The
// prior token is not revoked; tokens are stateless and expire on their own.
func (s *Service) RefreshToken(user *models.User) (string, error) {
	return s.tokens.Issue(user.Email)
}

// ResolveSubject maps a verified token subject to an active user. It runs on
// every authenticated request; there is no session cache.
func (s *Service) ResolveSubject(email string) (*models.User, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Unauthorized("Could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}

// checkOwnership fails closed whenever the authenticated user is not the
// target of the mutation. No role hierarchy, no admin override.
func checkOwnership(authenticatedID, targetID int64) error {
	if authenticatedID != targetID {
		return apperr.Forbidden("Not enough permission!")
	}
	return nil
}
