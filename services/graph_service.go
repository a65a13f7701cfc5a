// File: /services/graph_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderlog-api/models"
)

// GraphService owns every multi-step mutation of the resource graph:
// cascade deletes, like toggles, comment threading and follow edges.
// Each operation runs inside a single transaction so the child-side
// references, the aggregate counters and the rows themselves move
// together or not at all. A transaction that fails after its first
// write surfaces as ErrPartialFailure.
type GraphService struct {
	db *gorm.DB
}

func NewGraphService(db *gorm.DB) *GraphService {
	return &GraphService{db: db}
}

// CreateTrip stores a new trip and bumps the owner's trip counter
func (gs *GraphService) CreateTrip(trip *models.Trip) error {
	err := gs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", trip.UserID).
			UpdateColumn("total_trips", gorm.Expr("total_trips + ?", 1)).Error
	})
	if err != nil {
		return fmt.Errorf("%w: create trip: %v", ErrPartialFailure, err)
	}
	return nil
}

// DeleteTrip removes a trip together with its entries, their comments
// and every like row referencing them, then decrements the owner's
// trip counter.
func (gs *GraphService) DeleteTrip(tripID, requesterID string) error {
	var trip models.Trip
	if err := gs.db.First(&trip, "id = ?", tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanWriteTrip(&trip, requesterID) {
		return ErrAccessDenied
	}

	err := gs.db.Transaction(func(tx *gorm.DB) error {
		var entryIDs []string
		if err := tx.Model(&models.JournalEntry{}).Where("trip_id = ?", tripID).
			Pluck("id", &entryIDs).Error; err != nil {
			return err
		}

		if len(entryIDs) > 0 {
			var commentIDs []string
			if err := tx.Model(&models.Comment{}).Where("entry_id IN ?", entryIDs).
				Pluck("id", &commentIDs).Error; err != nil {
				return err
			}
			if len(commentIDs) > 0 {
				if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
					return err
				}
				if err := tx.Where("entry_id IN ?", entryIDs).Delete(&models.Comment{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("entry_id IN ?", entryIDs).Delete(&models.EntryLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("trip_id = ?", tripID).Delete(&models.JournalEntry{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Trip{}, "id = ?", tripID).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", trip.UserID).
			UpdateColumn("total_trips", gorm.Expr("total_trips - ?", 1)).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete trip cascade: %v", ErrPartialFailure, err)
	}
	return nil
}

// CreateEntry attaches a new entry to its trip. Only the trip owner may
// add entries.
func (gs *GraphService) CreateEntry(entry *models.JournalEntry, requesterID string) error {
	var trip models.Trip
	if err := gs.db.First(&trip, "id = ?", entry.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanWriteEntry(&trip, requesterID) {
		return ErrAccessDenied
	}

	return gs.db.Create(entry).Error
}

// DeleteEntry removes an entry and cascades over its comments and likes
func (gs *GraphService) DeleteEntry(entryID, requesterID string) error {
	var entry models.JournalEntry
	if err := gs.db.Preload("Trip").First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanWriteEntry(&entry.Trip, requesterID) {
		return ErrAccessDenied
	}

	err := gs.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []string
		if err := tx.Model(&models.Comment{}).Where("entry_id = ?", entryID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("entry_id = ?", entryID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("entry_id = ?", entryID).Delete(&models.EntryLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.JournalEntry{}, "id = ?", entryID).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete entry cascade: %v", ErrPartialFailure, err)
	}
	return nil
}

// ToggleEntryLike flips the requester's like on an entry. Toggling twice
// returns the entry to its original state and count.
func (gs *GraphService) ToggleEntryLike(entryID, userID string) (liked bool, count int, err error) {
	var entry models.JournalEntry
	if err := gs.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrNotFound
		}
		return false, 0, err
	}

	err = gs.db.Transaction(func(tx *gorm.DB) error {
		var existing models.EntryLike
		findErr := tx.Where("entry_id = ? AND user_id = ?", entryID, userID).First(&existing).Error

		switch {
		case findErr == nil:
			// Unlike
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.JournalEntry{}).Where("id = ?", entryID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// Like
			like := models.EntryLike{EntryID: entryID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.JournalEntry{}).Where("id = ?", entryID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
				return err
			}
			liked = true
		default:
			return findErr
		}

		var likes int64
		if err := tx.Model(&models.EntryLike{}).Where("entry_id = ?", entryID).Count(&likes).Error; err != nil {
			return err
		}
		count = int(likes)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("%w: toggle like: %v", ErrPartialFailure, err)
	}
	return liked, count, nil
}

// ToggleCommentLike flips the requester's like on a comment
func (gs *GraphService) ToggleCommentLike(commentID, userID string) (liked bool, count int, err error) {
	var comment models.Comment
	if err := gs.db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrNotFound
		}
		return false, 0, err
	}

	err = gs.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentLike
		findErr := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&existing).Error

		switch {
		case findErr == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			like := models.CommentLike{CommentID: commentID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
				return err
			}
			liked = true
		default:
			return findErr
		}

		var likes int64
		if err := tx.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&likes).Error; err != nil {
			return err
		}
		count = int(likes)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("%w: toggle comment like: %v", ErrPartialFailure, err)
	}
	return liked, count, nil
}

// AddComment stores a comment on an entry. Any authenticated user may
// comment; a replyTo reference must point at a comment on the same entry.
func (gs *GraphService) AddComment(entryID, userID, content string, replyTo *string) (*models.Comment, error) {
	var entry models.JournalEntry
	if err := gs.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if replyTo != nil && *replyTo != "" {
		var parent models.Comment
		if err := gs.db.First(&parent, "id = ?", *replyTo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidReference
			}
			return nil, err
		}
		if parent.EntryID != entryID {
			// Cross-entry replies are rejected
			return nil, ErrInvalidReference
		}
	} else {
		replyTo = nil
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		EntryID:   entryID,
		UserID:    userID,
		Content:   content,
		ReplyToID: replyTo,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := gs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.JournalEntry{}).Where("id = ?", entryID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: add comment: %v", ErrPartialFailure, err)
	}

	if err := gs.db.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment. Permitted for the comment author and
// for the owner of the trip the entry belongs to.
func (gs *GraphService) DeleteComment(entryID, commentID, requesterID string) error {
	var comment models.Comment
	if err := gs.db.First(&comment, "id = ? AND entry_id = ?", commentID, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var entry models.JournalEntry
	if err := gs.db.Preload("Trip").First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanDeleteComment(&comment, &entry.Trip, requesterID) {
		return ErrAccessDenied
	}

	err := gs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Comment{}, "id = ?", commentID).Error; err != nil {
			return err
		}
		return tx.Model(&models.JournalEntry{}).Where("id = ?", entryID).
			UpdateColumn("comments_count", gorm.Expr("comments_count - ?", 1)).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete comment: %v", ErrPartialFailure, err)
	}
	return nil
}

// ToggleFollow flips the follow edge between actor and target. Both
// sides of the graph (the edge row and the two counters) move in one
// transaction, so follow/unfollow is always bilateral.
func (gs *GraphService) ToggleFollow(actorID, targetID string) (following bool, err error) {
	if actorID == targetID {
		return false, ErrInvalidOperation
	}

	var target models.User
	if err := gs.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	err = gs.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		findErr := tx.Where("follower_id = ? AND following_id = ?", actorID, targetID).First(&existing).Error

		switch {
		case findErr == nil:
			// Unfollow
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", actorID).
				UpdateColumn("following_count", gorm.Expr("following_count - ?", 1)).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", targetID).
				UpdateColumn("followers_count", gorm.Expr("followers_count - ?", 1)).Error; err != nil {
				return err
			}
			following = false
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// Follow
			follow := models.Follow{FollowerID: actorID, FollowingID: targetID}
			if err := tx.Create(&follow).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", actorID).
				UpdateColumn("following_count", gorm.Expr("following_count + ?", 1)).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", targetID).
				UpdateColumn("followers_count", gorm.Expr("followers_count + ?", 1)).Error; err != nil {
				return err
			}
			following = true
		default:
			return findErr
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: toggle follow: %v", ErrPartialFailure, err)
	}
	return following, nil
}
