// File: /models/entry.go
package models

import (
	"time"
)

// Moods a journal entry may carry
var ValidMoods = []string{"excited", "happy", "relaxed", "adventurous", "nostalgic", "tired", "amazed", "peaceful"}

func IsValidMood(mood string) bool {
	for _, m := range ValidMoods {
		if m == mood {
			return true
		}
	}
	return false
}

// WeatherSnapshot is the weather captured at writing time, stored
// denormalized on the entry. It is never refreshed afterwards.
type WeatherSnapshot struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Description string   `json:"description,omitempty" gorm:"size:100"`
	Humidity    *int     `json:"humidity,omitempty"`
	WindSpeed   *float64 `json:"wind_speed,omitempty"`
}

// JournalEntry belongs to exactly one trip. It has no owner field of its
// own; write authority is always resolved through the parent trip.
type JournalEntry struct {
	ID            string          `json:"id" gorm:"primaryKey;size:191"`
	TripID        string          `json:"trip_id" gorm:"not null;size:191;index"`
	Title         string          `json:"title" gorm:"not null;size:255"`
	Content       string          `json:"content" gorm:"not null;type:text"`
	Location      string          `json:"location" gorm:"size:255"`
	LocationLat   *float64        `json:"location_lat"`
	LocationLng   *float64        `json:"location_lng"`
	Photos        PhotoList       `json:"photos"`
	Weather       WeatherSnapshot `json:"weather" gorm:"embedded;embeddedPrefix:weather_"`
	Mood          string          `json:"mood" gorm:"default:'happy';size:20;index"`
	PersonalTags  StringSlice     `json:"personal_tags"`
	Date          time.Time       `json:"date" gorm:"not null"`
	LikesCount    int             `json:"likes_count" gorm:"default:0"`
	CommentsCount int             `json:"comments_count" gorm:"default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships, derived from the child-side references
	Trip     Trip        `json:"trip,omitempty" gorm:"foreignKey:TripID"`
	Likes    []EntryLike `json:"likes,omitempty" gorm:"foreignKey:EntryID"`
	Comments []Comment   `json:"comments,omitempty" gorm:"foreignKey:EntryID"`
}

// EntryLike is the authoritative record of one user liking one entry.
// A unique (entry_id, user_id) constraint keeps toggling idempotent.
type EntryLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EntryID   string    `json:"entry_id" gorm:"not null;size:191;index"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
