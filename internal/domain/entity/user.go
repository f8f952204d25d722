// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

const defaultLogoBaseURL = "https://api.dicebear.com/7.x/initials/svg?seed="

// User is an account on the marketplace. Creators carry their public studio profile on the same record.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across all users.
	Name         string    // The contact person's display name.
	Role         Role      // Assigned server-side; never taken from client input.
	BusinessName string    // The studio's public name.
	Logo         string    // URL of the studio logo.
	CoverPhoto   string    // URL of the studio banner.
	Description  string
	Phone        string // WhatsApp contact number.
	Address      string
	Facebook     string
	Instagram    string
	Twitter      string
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Roles returns the role set encoded into access tokens.
func (u *User) Roles() Roles {
	if u == nil || !u.Role.IsValid() {
		return Roles{}
	}

	return Roles{u.Role}
}

// IsAdmin reports whether the user moderates the marketplace.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DefaultLogoURL returns the generated initials avatar used until a studio uploads its own logo.
func DefaultLogoURL(businessName string) string {
	return defaultLogoBaseURL + url.QueryEscape(businessName)
}

// ProfilePatch holds the profile fields a user may change. Nil fields are left untouched.
type ProfilePatch struct {
	Name         *string
	BusinessName *string
	Logo         *string
	CoverPhoto   *string
	Description  *string
	Phone        *string
	Address      *string
	Facebook     *string
	Instagram    *string
	Twitter      *string
}

// IsEmpty reports whether no allowed field was supplied.
func (p ProfilePatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the supplied fields to their column names.
func (p ProfilePatch) Columns() map[string]any {
	cols := make(map[string]any)
	set := func(column string, v *string) {
		if v != nil {
			cols[column] = *v
		}
	}
	set("name", p.Name)
	set("business_name", p.BusinessName)
	set("logo", p.Logo)
	set("cover_photo", p.CoverPhoto)
	set("description", p.Description)
	set("phone", p.Phone)
	set("address", p.Address)
	set("facebook", p.Facebook)
	set("instagram", p.Instagram)
	set("twitter", p.Twitter)

	return cols
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role  Role
	Query string // Case and accent insensitive match on business name
}
