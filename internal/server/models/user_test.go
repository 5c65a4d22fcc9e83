package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONNeverContainsPassword(t *testing.T) {
	u := &User{ID: "1", Name: "Alice", Email: "alice@x.com", PasswordHash: "$2a$10$secret"}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")

	b, err = json.Marshal(u.Public())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Alice","email":"alice@x.com"}`, string(b))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@x.com", NormalizeEmail("  Alice@X.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
