package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttlMinutes int) *TokenService {
	t.Helper()
	svc, err := NewTokenService("super-secret", "HS256", ttlMinutes)
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 30)

	token, err := svc.Issue("leonardo@example.com")
	require.NoError(t, err)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "leonardo@example.com", subject)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, -1)

	token, err := svc.Issue("leonardo@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 30)

	token, err := svc.Issue("leonardo@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestService(t, 30)
	verifier, err := NewTokenService("other-secret", "HS256", 30)
	require.NoError(t, err)

	token, err := issuer.Issue("leonardo@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongAlgorithmRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 30)

	// Same secret, different signing method: must not verify.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "leonardo@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	})
	signed, err := foreign.SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MissingSubject(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 30)

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 30)

	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("secret", "HS1024", 30)
	assert.Error(t, err)
}
