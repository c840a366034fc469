// Package service holds the business logic: registration, authentication,
// ownership checks and catalog operations.
package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/security"
)

// Store is the persistence surface the service depends on. It is implemented
// by repository.Repository.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id int64) (*models.User, error)
	FindUserByNameOrEmail(name, email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	DeactivateUser(id int64) error
	PurgeInactiveUsers(cutoff time.Time) (int64, error)
	MarkBookRead(userID, bookID int64) error

	CreateNovelist(novelist *models.Novelist) error
	FindNovelistByID(id int64) (*models.Novelist, error)
	FindNovelistByName(name string) (*models.Novelist, error)
	ListNovelists() ([]models.Novelist, error)
	SearchNovelistsByName(name string) ([]models.Novelist, error)
	UpdateNovelist(novelist *models.Novelist) error
	DeleteNovelist(id int64) error

	CreateBook(book *models.Book) error
	FindBookByID(id int64) (*models.Book, error)
	FindBookByTitle(title string) (*models.Book, error)
	ListBooks() ([]models.Book, error)
	SearchBooks(title string, year int) ([]models.Book, error)
	UpdateBook(book *models.Book) error
	DeleteBook(id int64) error
}

// Mailer sends the registration welcome mail. A nil Mailer disables mail.
type Mailer interface {
	SendWelcome(to, name string) error
}

// Service handles business logic.
type Service struct {
	store  Store
	tokens *security.TokenService
	mailer Mailer
	log    *logrus.Logger
}

// NewService initializes a new service. mailer may be nil.
func NewService(store Store, tokens *security.TokenService, mailer Mailer, log *logrus.Logger) *Service {
	return &Service{store: store, tokens: tokens, mailer: mailer, log: log}
}
