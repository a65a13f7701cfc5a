// File: /models/user.go
package models

import (
	"time"
)

// Visibility tiers for profiles and trips. The "friends" tier is stored
// but evaluated the same as "private" until a real friendship check exists.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityFriends = "friends"
)

func IsValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate || v == VisibilityFriends
}

type User struct {
	ID        string  `json:"id" gorm:"primaryKey;size:191"`
	Username  string  `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email     string  `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string  `json:"-" gorm:"not null;size:255"`
	FirstName string  `json:"first_name" gorm:"size:100"`
	LastName  string  `json:"last_name" gorm:"size:100"`
	Bio       string  `json:"bio" gorm:"size:1000"`
	Location  string  `json:"location" gorm:"size:255"`
	Avatar    *string `json:"avatar" gorm:"size:500"`

	// Privacy settings
	ProfileVisibility string `json:"profile_visibility" gorm:"default:'public';size:20"`
	TripsVisibility   string `json:"trips_visibility" gorm:"default:'public';size:20"`

	// Travel statistics counters, updated alongside trip mutations
	CountriesVisited int     `json:"countries_visited" gorm:"default:0"`
	TotalTrips       int     `json:"total_trips" gorm:"default:0"`
	TotalDistance    float64 `json:"total_distance" gorm:"default:0"`

	FollowersCount int `json:"followers_count" gorm:"default:0"`
	FollowingCount int `json:"following_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Trips []Trip `json:"trips,omitempty" gorm:"foreignKey:UserID"`
}

// Follow is the authoritative follower/following edge. Both directions
// of the social graph are derived from this single row.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  string    `json:"follower_id" gorm:"not null;size:191;index"`
	FollowingID string    `json:"following_id" gorm:"not null;size:191;index"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `json:"follower,omitempty" gorm:"foreignKey:FollowerID"`
	Following User `json:"following,omitempty" gorm:"foreignKey:FollowingID"`
}

// UserSummary is the public projection used when embedding the author of
// a trip, entry or comment, and in user search results.
type UserSummary struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Avatar           *string `json:"avatar"`
	CountriesVisited int     `json:"countries_visited"`
	TotalTrips       int     `json:"total_trips"`
	TotalDistance    float64 `json:"total_distance"`
}

// Summary strips the user down to its public projection
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		Username:         u.Username,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Avatar:           u.Avatar,
		CountriesVisited: u.CountriesVisited,
		TotalTrips:       u.TotalTrips,
		TotalDistance:    u.TotalDistance,
	}
}
