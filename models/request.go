package models

import "time"

// RequestStatus represents all possible states of a charity's claim
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusRejected  RequestStatus = "rejected"
	StatusCompleted RequestStatus = "completed"
)

type Request struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	ListingID uint          `json:"listing_id" gorm:"not null;index"`
	Listing   FoodListing   `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	CharityID uint          `json:"charity_id" gorm:"not null;index"`
	Charity   User          `json:"charity,omitempty" gorm:"foreignKey:CharityID"`
	Status    RequestStatus `json:"status" gorm:"not null;default:'pending'"`
	Feedback  *Feedback     `json:"feedback,omitempty" gorm:"foreignKey:RequestID"`
	CreatedAt time.Time     `json:"created_at"`
}
