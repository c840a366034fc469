package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mader-project/mader/internal/apperr"
	"github.com/mader-project/mader/internal/security"
)

func requireAppErr(t *testing.T, err error, status int, detail string) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, detail, appErr.Detail)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "leonardo", user.Name)
	assert.NotEqual(t, "secret", user.Password, "password must be stored hashed")
	assert.True(t, security.VerifyPassword("secret", user.Password))
}

func TestRegister_NameConflict(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	_, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register("leonardo", "other@example.com", "secret")
	requireAppErr(t, err, http.StatusConflict, "Username already exists!")
}

func TestRegister_EmailConflict(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	_, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register("other", "leonardo@example.com", "secret")
	requireAppErr(t, err, http.StatusConflict, "Email already exists!")
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMemStore())

	_, err := svc.GetUser(99)
	requireAppErr(t, err, http.StatusNotFound, "User not found!")
}

func TestEditUser(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	updated, err := svc.EditUser(user, user.ID, "leo", "leo@example.com", "newsecret")
	require.NoError(t, err)

	assert.Equal(t, "leo", updated.Name)
	assert.Equal(t, "leo@example.com", updated.Email)
	assert.True(t, security.VerifyPassword("newsecret", updated.Password))
}

func TestEditUser_NotFoundBeforeForbidden(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	// A missing target must answer 404, never 403.
	_, err = svc.EditUser(user, 99, "leo", "leo@example.com", "secret")
	requireAppErr(t, err, http.StatusNotFound, "User not found!")
}

func TestEditUser_Forbidden(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)
	other, err := svc.Register("maria", "maria@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.EditUser(user, other.ID, "taken", "taken@example.com", "secret")
	requireAppErr(t, err, http.StatusForbidden, "Not enough permission!")

	// No mutation occurred.
	unchanged, err := svc.GetUser(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", unchanged.Name)
}

func TestEditUser_UniqueConflict(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)
	_, err = svc.Register("maria", "maria@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.EditUser(user, user.ID, "maria", "leonardo@example.com", "secret")
	requireAppErr(t, err, http.StatusConflict, "Username or Email already exists!")
}

func TestDeleteUser_Deactivates(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user, user.ID))

	// The row is kept but no longer resolves.
	_, err = svc.GetUser(user.ID)
	requireAppErr(t, err, http.StatusNotFound, "User not found!")
	assert.Contains(t, store.users, user.ID)
	assert.False(t, store.users[user.ID].Active)
}

func TestDeleteUser_Forbidden(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)
	other, err := svc.Register("maria", "maria@example.com", "secret")
	require.NoError(t, err)

	err = svc.DeleteUser(user, other.ID)
	requireAppErr(t, err, http.StatusForbidden, "Not enough permission!")
}

func TestMarkBookRead(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	novelist, err := svc.CreateNovelist("machado de assis")
	require.NoError(t, err)
	book, err := svc.CreateBook(novelist.ID, "dom casmurro", 1899)
	require.NoError(t, err)

	require.NoError(t, svc.MarkBookRead(user, book.ID))
	assert.True(t, store.read[[2]int64{user.ID, book.ID}])

	// Idempotent on repeat.
	require.NoError(t, svc.MarkBookRead(user, book.ID))
}

func TestMarkBookRead_BookNotFound(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := newTestService(t, store)

	user, err := svc.Register("leonardo", "leonardo@example.com", "secret")
	require.NoError(t, err)

	err = svc.MarkBookRead(user, 99)
	requireAppErr(t, err, http.StatusNotFound, "Book not found!")
}
