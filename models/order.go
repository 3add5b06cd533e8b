package models

import "time"

// OrderStatus represents the lifecycle state of an interest order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
)

// ValidStatus reports whether s is one of the enumerated statuses
func ValidStatus(s OrderStatus) bool {
	return s == StatusPending || s == StatusCompleted
}

type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Reference string      `json:"reference" gorm:"uniqueIndex"`
	UserID    uint        `json:"userId" gorm:"not null"`
	User      User        `json:"-" gorm:"foreignKey:UserID"`
	LiquorID  uint        `json:"liquorId" gorm:"not null"`
	Liquor    Liquor      `json:"-" gorm:"foreignKey:LiquorID"`
	Status    OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UserSummary is the user projection attached to a joined order
type UserSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
}

// LiquorSummary is the liquor projection attached to a joined order.
// ImageURL is only populated for the admin listing.
type LiquorSummary struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Brand    string         `json:"brand"`
	Price    float64        `json:"price"`
	Category LiquorCategory `json:"category"`
	ImageURL string         `json:"imageUrl,omitempty"`
}

// OrderResponse is an order joined with its user and liquor summaries.
// Either summary is null when the referenced record no longer exists,
// so old orders stay listable after a catalog delete.
type OrderResponse struct {
	ID        uint           `json:"id"`
	Reference string         `json:"reference"`
	UserID    uint           `json:"userId"`
	LiquorID  uint           `json:"liquorId"`
	Status    OrderStatus    `json:"status"`
	User      *UserSummary   `json:"user"`
	Liquor    *LiquorSummary `json:"liquor"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Joined builds the response projection from a preloaded order. A zero
// User or Liquor ID means the preload found nothing.
func (o *Order) Joined(includeImage bool) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		Reference: o.Reference,
		UserID:    o.UserID,
		LiquorID:  o.LiquorID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.User.ID != 0 {
		resp.User = &UserSummary{
			ID:           o.User.ID,
			Name:         o.User.Name,
			MobileNumber: o.User.MobileNumber,
		}
	}
	if o.Liquor.ID != 0 {
		resp.Liquor = &LiquorSummary{
			ID:       o.Liquor.ID,
			Name:     o.Liquor.Name,
			Brand:    o.Liquor.Brand,
			Price:    o.Liquor.Price,
			Category: o.Liquor.Category,
		}
		if includeImage {
			resp.Liquor.ImageURL = o.Liquor.ImageURL
		}
	}
	return resp
}
