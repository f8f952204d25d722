package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, Roles{RoleCreator}, (&User{Role: RoleCreator}).Roles())
	assert.Equal(t, Roles{RoleAdmin}, (&User{Role: RoleAdmin}).Roles())
	assert.Empty(t, (&User{Role: Role("owner")}).Roles())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleCreator}).IsAdmin())
}

func TestDefaultLogoURL(t *testing.T) {
	logo := DefaultLogoURL("Andes Interactive")

	assert.True(t, strings.HasSuffix(logo, "Andes+Interactive"))
}

func TestProfilePatch_Columns(t *testing.T) {
	assert.True(t, ProfilePatch{}.IsEmpty())

	phone := "+591 70000000"
	empty := ""
	patch := ProfilePatch{Phone: &phone, Twitter: &empty}

	assert.False(t, patch.IsEmpty())
	assert.Equal(t, map[string]any{"phone": "+591 70000000", "twitter": ""}, patch.Columns())
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "superuser", "creator", "admin"})

	assert.Equal(t, Roles{RoleAdmin, RoleCreator}, roles)
	assert.Equal(t, []string{"admin", "creator"}, roles.ToStrings())
	assert.Empty(t, RolesFromStrings(nil).ToStrings())
}
