package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestUser_IsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleCustomer}).IsAdmin())
	assert.False(t, (*User)(nil).IsAdmin())
}
