package entity

import "time"

// Sentinel values signal "not yet known" fields on a restaurant record.
// They are only ever upgraded to real values, never the other way around.
const (
	UnknownName    = "Unknown"
	UnknownCuisine = "Unknown"
	NoAddress      = "No address available"
	NoPhoneNumber  = "No phone number provided"
)

// Restaurant represents a restaurant from the 'restaurants' table,
// keyed by the external place_id for deduplication.
type Restaurant struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	PlaceID     string  `json:"place_id" gorm:"size:255;uniqueIndex;not null"`
	Name        string  `json:"name" gorm:"size:255"`
	Address     string  `json:"address" gorm:"size:255"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CuisineType string  `json:"cuisine_type" gorm:"size:100"`
	PhoneNumber string  `json:"phone_number" gorm:"size:20"`
}

// Favorite represents a user's favorite from the 'favorites' table.
// Name, address and rating are snapshots taken at creation time.
type Favorite struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_place"`
	PlaceID   string    `json:"place_id" gorm:"size:255;not null;uniqueIndex:idx_user_place"`
	Name      string    `json:"name" gorm:"size:255"`
	Address   string    `json:"address" gorm:"size:255"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Review represents a user's review of a restaurant from the 'reviews' table.
// Reviews are append-only and listed newest first.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	RestaurantID uint      `json:"-" gorm:"not null;index"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
