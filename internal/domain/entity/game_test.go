package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGame_IsVisibleTo(t *testing.T) {
	owner := uuid.New()
	ownerViewer := &Viewer{UserID: owner, Roles: Roles{RoleCreator}}
	stranger := &Viewer{UserID: uuid.New(), Roles: Roles{RoleCreator}}
	admin := &Viewer{UserID: uuid.New(), Roles: Roles{RoleAdmin}}

	tests := []struct {
		status GameStatus
		viewer *Viewer
		want   bool
	}{
		{GameStatusApproved, nil, true},
		{GameStatusApproved, stranger, true},
		{GameStatusPending, nil, false},
		{GameStatusPending, stranger, false},
		{GameStatusPending, ownerViewer, true},
		{GameStatusPending, admin, true},
		{GameStatusRejected, stranger, false},
		{GameStatusRejected, ownerViewer, true},
		{GameStatusRejected, admin, true},
	}

	for _, tt := range tests {
		game := &Game{UserID: owner, Status: tt.status}
		assert.Equal(t, tt.want, game.IsVisibleTo(tt.viewer), "status=%s viewer=%v", tt.status, tt.viewer)
	}
}

func TestGame_PrimaryImageURL(t *testing.T) {
	const placeholder = "https://cdn.blvgames.bo/placeholder.png"

	assert.Equal(t, placeholder, (&Game{}).PrimaryImageURL(placeholder))

	game := &Game{Images: []GameImage{
		{ImageURL: "second.png", DisplayOrder: 1},
		{ImageURL: "first.png", DisplayOrder: 0},
		{ImageURL: "third.png", DisplayOrder: 2},
	}}
	assert.Equal(t, "first.png", game.PrimaryImageURL(placeholder))
}

func TestNewGameImages(t *testing.T) {
	gameID := uuid.New()

	images := NewGameImages(gameID, []string{"a.png", "", "b.png"})

	assert.Len(t, images, 2)
	assert.Equal(t, "a.png", images[0].ImageURL)
	assert.Equal(t, 0, images[0].DisplayOrder)
	assert.Equal(t, "b.png", images[1].ImageURL)
	assert.Equal(t, 1, images[1].DisplayOrder)
	assert.Equal(t, gameID, images[1].GameID)
	assert.Empty(t, NewGameImages(gameID, nil))
}

func TestGamePatch(t *testing.T) {
	assert.True(t, GamePatch{}.IsEmpty())

	name := "Retro Racer"
	price := 0.0
	patch := GamePatch{Name: &name, Price: &price}
	assert.False(t, patch.IsEmpty())
	assert.Equal(t, map[string]any{"name": "Retro Racer", "price": 0.0}, patch.Columns())

	images := []string{}
	assert.False(t, GamePatch{Images: &images}.IsEmpty())
}

func TestGameStatus_IsValid(t *testing.T) {
	assert.True(t, GameStatusPending.IsValid())
	assert.True(t, GameStatusApproved.IsValid())
	assert.True(t, GameStatusRejected.IsValid())
	assert.False(t, GameStatus("archived").IsValid())
}

func TestViewer_IsAdmin(t *testing.T) {
	var anonymous *Viewer
	assert.False(t, anonymous.IsAdmin())
	assert.False(t, (&Viewer{Roles: Roles{RoleCreator}}).IsAdmin())
	assert.True(t, (&Viewer{Roles: Roles{RoleAdmin}}).IsAdmin())
}
