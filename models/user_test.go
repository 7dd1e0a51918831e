package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleEmployee))
	assert.True(t, ValidRole(RoleCustomer))
	assert.False(t, ValidRole("manager"))
	assert.False(t, ValidRole(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("jane@example"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestValidRatingValue(t *testing.T) {
	for v := 1; v <= 5; v++ {
		assert.True(t, ValidRatingValue(v))
	}
	assert.False(t, ValidRatingValue(0))
	assert.False(t, ValidRatingValue(6))
	assert.False(t, ValidRatingValue(-1))
}

func TestUserPasswordNeverSerializes(t *testing.T) {
	user := User{Username: "jane", Email: "jane@example.com", Password: "hash"}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "password")
}
