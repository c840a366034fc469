package service

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/repository"
	"github.com/mader-project/mader/internal/security"
)

// memStore is an in-memory Store used by the service tests.
type memStore struct {
	users     map[int64]*models.User
	novelists map[int64]*models.Novelist
	books     map[int64]*models.Book
	read      map[[2]int64]bool
	nextID    int64
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[int64]*models.User{},
		novelists: map[int64]*models.Novelist{},
		books:     map[int64]*models.Book{},
		read:      map[[2]int64]bool{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(user *models.User) error {
	for _, u := range m.users {
		if u.Name == user.Name || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = m.id()
	user.Active = true
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) FindUserByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.Active {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) FindUserByID(id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok && u.Active {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) FindUserByNameOrEmail(name, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Name == name || u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) ListUsers() ([]models.User, error) {
	users := []models.User{}
	for _, u := range m.users {
		if u.Active {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *memStore) UpdateUser(user *models.User) error {
	for _, u := range m.users {
		if u.ID != user.ID && (u.Name == user.Name || u.Email == user.Email) {
			return repository.ErrDuplicate
		}
	}
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) DeactivateUser(id int64) error {
	u, ok := m.users[id]
	if !ok || !u.Active {
		return repository.ErrNotFound
	}
	u.Active = false
	return nil
}

func (m *memStore) PurgeInactiveUsers(cutoff time.Time) (int64, error) {
	var purged int64
	for id, u := range m.users {
		if !u.Active && u.UpdatedAt.Before(cutoff) {
			delete(m.users, id)
			purged++
		}
	}
	return purged, nil
}

func (m *memStore) MarkBookRead(userID, bookID int64) error {
	m.read[[2]int64{userID, bookID}] = true
	return nil
}

func (m *memStore) CreateNovelist(novelist *models.Novelist) error {
	for _, n := range m.novelists {
		if n.Name == novelist.Name {
			return repository.ErrDuplicate
		}
	}
	novelist.ID = m.id()
	copied := *novelist
	m.novelists[novelist.ID] = &copied
	return nil
}

func (m *memStore) FindNovelistByID(id int64) (*models.Novelist, error) {
	if n, ok := m.novelists[id]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) FindNovelistByName(name string) (*models.Novelist, error) {
	for _, n := range m.novelists {
		if n.Name == name {
			copied := *n
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) ListNovelists() ([]models.Novelist, error) {
	novelists := []models.Novelist{}
	for _, n := range m.novelists {
		novelists = append(novelists, *n)
	}
	return novelists, nil
}

func (m *memStore) SearchNovelistsByName(name string) ([]models.Novelist, error) {
	novelists := []models.Novelist{}
	for _, n := range m.novelists {
		if strings.Contains(strings.ToLower(n.Name), strings.ToLower(name)) {
			novelists = append(novelists, *n)
		}
	}
	return novelists, nil
}

func (m *memStore) UpdateNovelist(novelist *models.Novelist) error {
	if _, ok := m.novelists[novelist.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *novelist
	m.novelists[novelist.ID] = &copied
	return nil
}

func (m *memStore) DeleteNovelist(id int64) error {
	if _, ok := m.novelists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.novelists, id)
	for bookID, b := range m.books {
		if b.IDNovelist == id {
			delete(m.books, bookID)
		}
	}
	return nil
}

func (m *memStore) CreateBook(book *models.Book) error {
	for _, b := range m.books {
		if b.Title == book.Title {
			return repository.ErrDuplicate
		}
	}
	book.ID = m.id()
	copied := *book
	m.books[book.ID] = &copied
	return nil
}

func (m *memStore) FindBookByID(id int64) (*models.Book, error) {
	if b, ok := m.books[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) FindBookByTitle(title string) (*models.Book, error) {
	for _, b := range m.books {
		if b.Title == title {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) ListBooks() ([]models.Book, error) {
	books := []models.Book{}
	for _, b := range m.books {
		books = append(books, *b)
	}
	return books, nil
}

func (m *memStore) SearchBooks(title string, year int) ([]models.Book, error) {
	books := []models.Book{}
	for _, b := range m.books {
		if b.Year == year && strings.Contains(strings.ToLower(b.Title), strings.ToLower(title)) {
			books = append(books, *b)
		}
	}
	return books, nil
}

func (m *memStore) UpdateBook(book *models.Book) error {
	for _, b := range m.books {
		if b.ID != book.ID && b.Title == book.Title {
			return repository.ErrDuplicate
		}
	}
	if _, ok := m.books[book.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *book
	m.books[book.ID] = &copied
	return nil
}

func (m *memStore) DeleteBook(id int64) error {
	if _, ok := m.books[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.books, id)
	return nil
}

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	tokens, err := security.NewTokenService("test-secret", "HS256", 30)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewService(store, tokens, nil, log)
}
