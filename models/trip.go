// File: /models/trip.go
package models

import (
	"time"
)

type Trip struct {
	ID            string      `json:"id" gorm:"primaryKey;size:191"`
	UserID        string      `json:"user_id" gorm:"not null;size:191;index"`
	Title         string      `json:"title" gorm:"not null;size:255"`
	Description   string      `json:"description" gorm:"type:text"`
	Destination   string      `json:"destination" gorm:"not null;size:255"`
	DestLatitude  float64     `json:"dest_latitude"`
	DestLongitude float64     `json:"dest_longitude"`
	StartDate     time.Time   `json:"start_date" gorm:"not null"`
	EndDate       time.Time   `json:"end_date" gorm:"not null"`
	Privacy       string      `json:"privacy" gorm:"default:'public';size:20;index"`
	Tags          StringSlice `json:"tags"`
	CoverPhoto    string      `json:"cover_photo" gorm:"size:500"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Relationships. Entries is derived from the entry-side trip_id
	// reference, never stored as a list on the trip itself.
	User    User           `json:"user" gorm:"foreignKey:UserID"`
	Entries []JournalEntry `json:"entries,omitempty" gorm:"foreignKey:TripID"`
}
