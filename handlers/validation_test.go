package handlers

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCarBrand(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("carbrand", validateCarBrand))

	tests := []struct {
		brand string
		valid bool
	}{
		{"Fiat", true},
		{"Alfa Romeo", true},
		{"", false},
		{" Fiat", false},
		{"Fiat ", false},
		{strings.Repeat("x", maxBrandLength), true},
		{strings.Repeat("x", maxBrandLength+1), false},
	}
	for _, tt := range tests {
		err := v.Var(tt.brand, "carbrand")
		assert.Equal(t, tt.valid, err == nil, "brand %q", tt.brand)
	}
}

func TestRegisterValidatorsOnGinEngine(t *testing.T) {
	require.NoError(t, RegisterValidators())

	req := UpdateCarRequest{Brand: strPtr(" padded")}
	err := validate(req)
	assert.Error(t, err)

	assert.NoError(t, validate(UpdateCarRequest{}))
}

func strPtr(s string) *string { return &s }

func validate(obj interface{}) error {
	return binding.Validator.ValidateStruct(obj)
}
