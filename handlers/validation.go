package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxBrandLength = 50

// RegisterValidators installs the custom binding tags used by request types
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(requestFieldName)
	return v.RegisterValidation("carbrand", validateCarBrand)
}

// requestFieldName reports fields by their json or query name
func requestFieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// validateCarBrand accepts non-blank brands without surrounding whitespace
func validateCarBrand(fl validator.FieldLevel) bool {
	brand := fl.Field().String()
	return brand != "" &&
		strings.TrimSpace(brand) == brand &&
		len(brand) <= maxBrandLength
}
