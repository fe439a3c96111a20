package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	var u AdminUser
	require.NoError(t, u.SetPassword("adminpassword"))

	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "adminpassword", u.PasswordHash)

	assert.True(t, u.CheckPassword("adminpassword"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCheckPasswordFailsClosedOnEmptyHash(t *testing.T) {
	var u AdminUser
	assert.False(t, u.CheckPassword(""))
	assert.False(t, u.CheckPassword("anything"))
}
