package entity

import (
	"time"

	"github.com/google/uuid"
)

// GameStatus is the moderation state of a listing.
type GameStatus string

const (
	GameStatusPending  GameStatus = "pending"
	GameStatusApproved GameStatus = "approved"
	GameStatusRejected GameStatus = "rejected"
)

func (s GameStatus) String() string {
	return string(s)
}

// IsValid checks if the GameStatus is a valid value.
func (s GameStatus) IsValid() bool {
	switch s {
	case GameStatusPending, GameStatusApproved, GameStatusRejected:
		return true
	default:
		return false
	}
}

// Game is a listing published by a creator.
type Game struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owning creator.
	Name        string
	Description string
	Price       float64
	Category    string
	Status      GameStatus
	Featured    bool          // Featured listings sort ahead of the rest.
	Images      []GameImage   // Ordered by DisplayOrder.
	Owner       *OwnerSummary // Filled on reads only.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GameImage is one picture of a listing. The lowest DisplayOrder is the primary image.
type GameImage struct {
	ID           uuid.UUID
	GameID       uuid.UUID
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
}

// OwnerSummary is the creator profile joined into listing reads.
type OwnerSummary struct {
	ID           uuid.UUID
	Name         string
	BusinessName string
	Logo         string
	Phone        string
	Address      string
	Facebook     string
	Instagram    string
	Twitter      string
}

// IsVisibleTo reports whether the listing can be read by the viewer.
// Approved listings are public; the rest are limited to the owner and admins.
func (g *Game) IsVisibleTo(viewer *Viewer) bool {
	if g.Status == GameStatusApproved {
		return true
	}
	if viewer == nil {
		return false
	}

	return viewer.IsAdmin() || viewer.UserID == g.UserID
}

// PrimaryImageURL picks the image with the lowest display order, or placeholder when there is none.
func (g *Game) PrimaryImageURL(placeholder string) string {
	if len(g.Images) == 0 {
		return placeholder
	}
	primary := g.Images[0]
	for _, img := range g.Images[1:] {
		if img.DisplayOrder < primary.DisplayOrder {
			primary = img
		}
	}

	return primary.ImageURL
}

// NewGameImages assigns display order by slice position, skipping blank URLs.
func NewGameImages(gameID uuid.UUID, urls []string) []GameImage {
	images := make([]GameImage, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		images = append(images, GameImage{
			GameID:       gameID,
			ImageURL:     u,
			DisplayOrder: len(images),
		})
	}

	return images
}

// GamePatch holds the listing fields an owner may change. Nil fields are left untouched.
// Status is not part of the patch; it changes only through moderation.
type GamePatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Images      *[]string // Replaces the whole image set when present.
}

// IsEmpty reports whether no allowed field was supplied.
func (p GamePatch) IsEmpty() bool {
	return len(p.Columns()) == 0 && p.Images == nil
}

// Columns maps the supplied scalar fields to their column names.
func (p GamePatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}

	return cols
}

// GameFilter narrows listing queries. Zero values mean "no filter".
type GameFilter struct {
	UserID   *uuid.UUID
	Status   *GameStatus
	Category string // Matched case and accent insensitively
	Query    string // Substring of the listing name, case and accent insensitive
	Featured *bool
	Oldest   bool // Order oldest first instead of newest first
}

// Viewer is the authenticated caller of a read, nil for anonymous access.
type Viewer struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAdmin reports whether the viewer holds the admin role.
func (v *Viewer) IsAdmin() bool {
	return v != nil && v.Roles.Contains(RoleAdmin)
}
