package middleware

import (
	"context"
	"errors"
	"strings"

	"car-marketplace-api/apperror"
	"car-marketplace-api/models"
	"car-marketplace-api/response"

	"github.com/gin-gonic/gin"
)

const callerIDKey = "callerID"

// TokenVerifier resolves a bearer token into the user id it was issued for
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// UserFinder loads the current stored state of a user
type UserFinder interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

// AuthRequired validates the bearer token and stores the caller id in the
// context. Requests without a valid token never reach the handler.
func AuthRequired(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, apperror.Unauthenticated("Authorization header required (Bearer <token>)"))
			return
		}
		callerID, err := tokens.Verify(tokenStr)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(callerIDKey, callerID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// RoleRequired enforces that the caller currently holds one of the allowed
// roles. The role is read from the store, not from the token.
func RoleRequired(users UserFinder, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := CallerID(c)
		if !ok {
			response.Error(c, apperror.Unauthenticated("Not authenticated"))
			return
		}
		caller, err := users.Get(c.Request.Context(), callerID)
		if errors.Is(err, apperror.ErrNotFound) {
			response.Error(c, apperror.Unauthenticated("User no longer exists"))
			return
		}
		if err != nil {
			response.Error(c, err)
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		response.Error(c, apperror.Forbidden("Access denied. Required role(s): %s", rolesString(roles)))
	}
}

func rolesString(roles []models.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// CallerID returns the user id resolved by AuthRequired
func CallerID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(callerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
