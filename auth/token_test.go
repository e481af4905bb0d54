package auth

import (
	"strings"
	"testing"
	"time"

	"car-marketplace-api/apperror"
	"car-marketplace-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(secret string, ttl time.Duration) *TokenService {
	return NewTokenService(config.AuthConfig{Secret: secret, TokenTTL: ttl, Issuer: "test"})
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("super-secret", time.Hour)

	tok, err := s.Issue(42)
	require.NoError(t, err)

	sub, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), sub)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("super-secret", time.Minute)
	issuedAt := time.Now().Add(-2 * time.Hour)
	s.now = func() time.Time { return issuedAt }

	tok, err := s.Issue(1)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrExpired)
	assert.Equal(t, "Signature has expired", apperror.Detail(err))
}

func TestVerifyStillValidJustBeforeExpiry(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("super-secret", time.Minute)
	start := time.Now()
	s.now = func() time.Time { return start }

	tok, err := s.Issue(9)
	require.NoError(t, err)

	s.now = func() time.Time { return start.Add(59 * time.Second) }
	sub, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(9), sub)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestTokenService("right-secret", time.Hour).Issue(3)
	require.NoError(t, err)

	_, err = newTestTokenService("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("super-secret", time.Hour)
	tok, err := s.Issue(3)
	require.NoError(t, err)

	other, err := s.Issue(4)
	require.NoError(t, err)

	// graft the payload of another token onto this signature
	parts := strings.Split(tok, ".")
	otherParts := strings.Split(other, ".")
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = s.Verify(forged)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestTokenService("super-secret", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).
		SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = newTestTokenService("super-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestVerifyRejectsBadSubject(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = newTestTokenService("super-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	_, err := newTestTokenService("k", time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}
