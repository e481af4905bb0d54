package auth

import (
	"errors"
	"strconv"
	"time"

	"car-marketplace-api/apperror"
	"car-marketplace-api/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the stateless identity tokens.
// The subject is the user id; there is no revocation, rotating the secret
// invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

// Issue creates a signed token for subject that expires after the configured TTL
func (s *TokenService) Issue(subject uint) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(subject), 10),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded subject
func (s *TokenService) Verify(tokenStr string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperror.New(apperror.ErrExpired, "Signature has expired")
		}
		return 0, apperror.Unauthenticated("Invalid token")
	}
	if !token.Valid {
		return 0, apperror.Unauthenticated("Invalid token")
	}

	subject, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || subject == 0 {
		return 0, apperror.Unauthenticated("Invalid token")
	}
	return uint(subject), nil
}
