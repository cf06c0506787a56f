package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileRolePredicates(t *testing.T) {
	tests := []struct {
		role     Role
		isAuthor bool
		isAdmin  bool
	}{
		{RoleUser, false, false},
		{RoleAuthor, true, false},
		{RoleAdmin, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			p := Profile{Role: tt.role}
			assert.Equal(t, tt.isAuthor, p.IsAuthor())
			assert.Equal(t, tt.isAdmin, p.IsAdmin())
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleAuthor))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("moderator"))
	assert.False(t, ValidRole(""))
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, (&Profile{Role: RoleUser}).Validate())
	assert.NoError(t, (&Profile{Role: RoleAuthor, Bio: strings.Repeat("x", 500)}).Validate())
	assert.NoError(t, (&Profile{Role: RoleAuthor, Bio: strings.Repeat("я", 500)}).Validate())
	assert.Error(t, (&Profile{Role: RoleUser, Bio: strings.Repeat("x", 501)}).Validate())
	assert.Error(t, (&Profile{Role: "superuser"}).Validate())
}
