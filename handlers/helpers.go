package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"car-marketplace-api/apperror"
	"car-marketplace-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	invalidBody  = "Invalid request body"
	invalidQuery = "Invalid query parameters"
)

// bodyError turns a ShouldBindJSON failure into a Validation error. Decoder
// failures collapse into a fixed message.
func bodyError(err error) error {
	return bindingError(err, invalidBody)
}

func queryError(err error) error {
	return bindingError(err, invalidQuery)
}

func bindingError(err error, fallback string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Validation("%s", fallback)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperror.Validation("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s%s", fe.Field(), fe.Param(), unit)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s%s", fe.Field(), fe.Param(), unit)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "carbrand":
		return fmt.Sprintf("%s must be a trimmed, non-empty name of at most %d characters", fe.Field(), maxBrandLength)
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func callerID(c *gin.Context) (uint, error) {
	id, ok := middleware.CallerID(c)
	if !ok {
		return 0, apperror.Unauthenticated("Not authenticated")
	}
	return id, nil
}

// carID parses the path id; ids that cannot exist resolve to NotFound
func carID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NotFound("Car with id %s not found", raw)
	}
	return uint(id), nil
}
