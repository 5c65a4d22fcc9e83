package validate

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=72"`
	Nickname string `validate:"max=3"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(form{Name: "Alice", Email: "alice@x.com", Password: "secret123"}))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(form{Email: "nope", Password: "abc", Nickname: "toolong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{
		"name":     "is required",
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
		"nickname": "must be at most 3 characters",
	}, ve.Fields())
	assert.Contains(t, err.Error(), "name is required")
}

func TestMessage(t *testing.T) {
	err := Message("password", "is too long")
	assert.EqualError(t, err, "password is too long")
	assert.ErrorIs(t, err, common.ErrValidation)
}
