package handler

import (
	"time"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the public JSON form of an account. Credentials never leave the server.
type userView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	BusinessName string    `json:"business_name"`
	Logo         string    `json:"logo"`
	CoverPhoto   string    `json:"cover_photo"`
	Description  string    `json:"description"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Facebook     string    `json:"facebook"`
	Instagram    string    `json:"instagram"`
	Twitter      string    `json:"twitter"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role.String(),
		BusinessName: u.BusinessName,
		Logo:         u.Logo,
		CoverPhoto:   u.CoverPhoto,
		Description:  u.Description,
		Phone:        u.Phone,
		Address:      u.Address,
		Facebook:     u.Facebook,
		Instagram:    u.Instagram,
		Twitter:      u.Twitter,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func newUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

type imageView struct {
	ID           uuid.UUID `json:"id"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
}

type ownerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Logo         string    `json:"logo"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Facebook     string    `json:"facebook"`
	Instagram    string    `json:"instagram"`
	Twitter      string    `json:"twitter"`
}

type gameView struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Status      string      `json:"status"`
	Featured    bool        `json:"featured"`
	Image       string      `json:"image"` // Primary image or the placeholder.
	Images      []imageView `json:"images"`
	Owner       *ownerView  `json:"owner,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func newGameView(g *entity.Game, placeholder string) *gameView {
	if g == nil {
		return nil
	}

	minOrder := 0
	for i, img := range g.Images {
		if i == 0 || img.DisplayOrder < minOrder {
			minOrder = img.DisplayOrder
		}
	}
	images := make([]imageView, 0, len(g.Images))
	for _, img := range g.Images {
		images = append(images, imageView{
			ID:           img.ID,
			ImageURL:     img.ImageURL,
			DisplayOrder: img.DisplayOrder,
			IsPrimary:    img.DisplayOrder == minOrder,
		})
	}

	view := &gameView{
		ID:          g.ID,
		UserID:      g.UserID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		Category:    g.Category,
		Status:      g.Status.String(),
		Featured:    g.Featured,
		Image:       g.PrimaryImageURL(placeholder),
		Images:      images,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if o := g.Owner; o != nil {
		view.Owner = &ownerView{
			ID:           o.ID,
			Name:         o.Name,
			BusinessName: o.BusinessName,
			Logo:         o.Logo,
			Phone:        o.Phone,
			Address:      o.Address,
			Facebook:     o.Facebook,
			Instagram:    o.Instagram,
			Twitter:      o.Twitter,
		}
	}

	return view
}

func newGameViews(games []*entity.Game, placeholder string) []*gameView {
	views := make([]*gameView, 0, len(games))
	for _, g := range games {
		views = append(views, newGameView(g, placeholder))
	}

	return views
}

type moderationEventView struct {
	ID         uuid.UUID `json:"id"`
	GameID     uuid.UUID `json:"game_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newModerationEventViews(events []*entity.ModerationEvent) []moderationEventView {
	views := make([]moderationEventView, 0, len(events))
	for _, e := range events {
		views = append(views, moderationEventView{
			ID:         e.ID,
			GameID:     e.GameID,
			ActorID:    e.ActorID,
			Action:     string(e.Action),
			FromStatus: e.FromStatus.String(),
			ToStatus:   e.ToStatus.String(),
			Reason:     e.Reason,
			CreatedAt:  e.CreatedAt,
		})
	}

	return views
}
