// File: /models/comment.go
package models

import (
	"time"
)

// Comment belongs to one journal entry. ReplyToID may reference another
// comment on the same entry, forming a one-level reply thread.
type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	EntryID    string    `json:"entry_id" gorm:"not null;size:191;index"`
	UserID     string    `json:"user_id" gorm:"not null;size:191;index"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	ReplyToID  *string   `json:"reply_to_id" gorm:"size:191"`
	LikesCount int       `json:"likes_count" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// CommentLike mirrors EntryLike for comments
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID string    `json:"comment_id" gorm:"not null;size:191;index"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	CreatedAt time.Time `json:"created_at"`
}
