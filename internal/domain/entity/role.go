// Package entity holds the marketplace's business objects and the rules that
// belong to them (listing visibility, moderation transitions, click stats).
package entity

import "slices"

// Role is stored on users.role and carried in JWT claims.
type Role string

const (
	RoleCreator Role = "creator" // studio publishing listings
	RoleAdmin   Role = "admin"   // marketplace moderator
)

var knownRoles = []Role{RoleCreator, RoleAdmin}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return slices.Contains(knownRoles, r) }

// Roles is the role set of an authenticated viewer.
type Roles []Role

func (rs Roles) Contains(role Role) bool { return slices.Contains(rs, role) }

func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses claim values, dropping unknown and repeated roles.
func RolesFromStrings(values []string) Roles {
	var roles Roles
	for _, v := range values {
		role := Role(v)
		if role.IsValid() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
