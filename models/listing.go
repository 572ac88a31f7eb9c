package models

import "time"

// FoodListing is a restaurant's posted surplus-food offer. It stays
// available until the owner clears the flag or a request against it
// completes.
type FoodListing struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	Owner       User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	ItemName    string    `json:"item_name" gorm:"not null"`
	Quantity    string    `json:"quantity"`
	ImagePath   string    `json:"image_path"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	Requests    []Request `json:"requests,omitempty" gorm:"foreignKey:ListingID"`
	CreatedAt   time.Time `json:"created_at"`
}
