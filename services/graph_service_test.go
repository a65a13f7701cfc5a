// File: /services/graph_service_test.go
package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"wanderlog-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Trip{},
		&models.JournalEntry{},
		&models.EntryLike{},
		&models.Comment{},
		&models.CommentLike{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return &user
}

func seedTrip(t *testing.T, gs *GraphService, userID, privacy string) *models.Trip {
	t.Helper()

	trip := models.Trip{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       "Crossing the Alps",
		Destination: "Switzerland",
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 0, 7),
		Privacy:     privacy,
	}
	if err := gs.CreateTrip(&trip); err != nil {
		t.Fatalf("failed to seed trip: %v", err)
	}
	return &trip
}

func seedEntry(t *testing.T, gs *GraphService, trip *models.Trip) *models.JournalEntry {
	t.Helper()

	entry := models.JournalEntry{
		ID:      uuid.New().String(),
		TripID:  trip.ID,
		Title:   "Day one",
		Content: "Arrived in Zermatt.",
		Mood:    "happy",
		Date:    time.Now(),
	}
	if err := gs.CreateEntry(&entry, trip.UserID); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	return &entry
}

func TestCreateTripIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")

	seedTrip(t, gs, owner.ID, models.VisibilityPublic)
	seedTrip(t, gs, owner.ID, models.VisibilityPrivate)

	var reloaded models.User
	if err := db.First(&reloaded, "id = ?", owner.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.TotalTrips != 2 {
		t.Errorf("TotalTrips = %d, want 2", reloaded.TotalTrips)
	}
}

func TestDeleteTripCascades(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	liker := seedUser(t, db, "bob")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)
	entry := seedEntry(t, gs, trip)

	if _, _, err := gs.ToggleEntryLike(entry.ID, liker.ID); err != nil {
		t.Fatalf("failed to like entry: %v", err)
	}
	comment, err := gs.AddComment(entry.ID, liker.ID, "Looks amazing", nil)
	if err != nil {
		t.Fatalf("failed to add comment: %v", err)
	}
	if _, _, err := gs.ToggleCommentLike(comment.ID, owner.ID); err != nil {
		t.Fatalf("failed to like comment: %v", err)
	}

	if err := gs.DeleteTrip(trip.ID, owner.ID); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	for name, model := range map[string]interface{}{
		"trips":         &models.Trip{},
		"entries":       &models.JournalEntry{},
		"entry likes":   &models.EntryLike{},
		"comments":      &models.Comment{},
		"comment likes": &models.CommentLike{},
	} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("failed to count %s: %v", name, err)
		}
		if count != 0 {
			t.Errorf("%d %s left behind after trip delete, want 0", count, name)
		}
	}

	var reloaded models.User
	if err := db.First(&reloaded, "id = ?", owner.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if reloaded.TotalTrips != 0 {
		t.Errorf("TotalTrips = %d after delete, want 0", reloaded.TotalTrips)
	}
}

func TestDeleteTripDeniedForNonOwner(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)

	if err := gs.DeleteTrip(trip.ID, stranger.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("DeleteTrip by stranger error = %v, want ErrAccessDenied", err)
	}
	if err := gs.DeleteTrip("missing-id", owner.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTrip of missing trip error = %v, want ErrNotFound", err)
	}
}

func TestCreateEntryRequiresTripOwnership(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)

	entry := models.JournalEntry{
		ID:      uuid.New().String(),
		TripID:  trip.ID,
		Title:   "Not my trip",
		Content: "Should be rejected.",
		Date:    time.Now(),
	}
	if err := gs.CreateEntry(&entry, stranger.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("CreateEntry by non-owner error = %v, want ErrAccessDenied", err)
	}

	entry.TripID = "missing-trip"
	if err := gs.CreateEntry(&entry, owner.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateEntry on missing trip error = %v, want ErrNotFound", err)
	}
}

func TestToggleEntryLike(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	liker := seedUser(t, db, "bob")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)
	entry := seedEntry(t, gs, trip)

	liked, count, err := gs.ToggleEntryLike(entry.ID, liker.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !liked || count != 1 {
		t.Errorf("first toggle = (%v, %d), want (true, 1)", liked, count)
	}

	liked, count, err = gs.ToggleEntryLike(entry.ID, liker.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked || count != 0 {
		t.Errorf("second toggle = (%v, %d), want (false, 0)", liked, count)
	}

	var reloaded models.JournalEntry
	if err := db.First(&reloaded, "id = ?", entry.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if reloaded.LikesCount != 0 {
		t.Errorf("LikesCount = %d after double toggle, want 0", reloaded.LikesCount)
	}

	if _, _, err := gs.ToggleEntryLike("missing-entry", liker.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("toggle on missing entry error = %v, want ErrNotFound", err)
	}
}

func TestAddCommentReplyValidation(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	commenter := seedUser(t, db, "bob")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)
	entryA := seedEntry(t, gs, trip)
	entryB := seedEntry(t, gs, trip)

	parent, err := gs.AddComment(entryA.ID, commenter.ID, "First", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if parent.User.Username != "bob" {
		t.Errorf("comment author = %q, want %q", parent.User.Username, "bob")
	}

	reply, err := gs.AddComment(entryA.ID, owner.ID, "Reply on same entry", &parent.ID)
	if err != nil {
		t.Fatalf("same-entry reply failed: %v", err)
	}
	if reply.ReplyToID == nil || *reply.ReplyToID != parent.ID {
		t.Errorf("reply ReplyToID = %v, want %q", reply.ReplyToID, parent.ID)
	}

	if _, err := gs.AddComment(entryB.ID, owner.ID, "Cross-entry reply", &parent.ID); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("cross-entry reply error = %v, want ErrInvalidReference", err)
	}

	missing := "missing-comment"
	if _, err := gs.AddComment(entryA.ID, owner.ID, "Dangling reply", &missing); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("dangling reply error = %v, want ErrInvalidReference", err)
	}

	var reloaded models.JournalEntry
	if err := db.First(&reloaded, "id = ?", entryA.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if reloaded.CommentsCount != 2 {
		t.Errorf("CommentsCount = %d, want 2", reloaded.CommentsCount)
	}
}

func TestDeleteCommentAuthority(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	commenter := seedUser(t, db, "bob")
	stranger := seedUser(t, db, "carol")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)
	entry := seedEntry(t, gs, trip)

	byCommenter, err := gs.AddComment(entry.ID, commenter.ID, "Mine", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	onOwnersTrip, err := gs.AddComment(entry.ID, commenter.ID, "Also mine", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	if err := gs.DeleteComment(entry.ID, byCommenter.ID, stranger.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("delete by stranger error = %v, want ErrAccessDenied", err)
	}
	if err := gs.DeleteComment(entry.ID, byCommenter.ID, commenter.ID); err != nil {
		t.Errorf("delete by author failed: %v", err)
	}
	if err := gs.DeleteComment(entry.ID, onOwnersTrip.ID, owner.ID); err != nil {
		t.Errorf("delete by trip owner failed: %v", err)
	}

	var reloaded models.JournalEntry
	if err := db.First(&reloaded, "id = ?", entry.ID).Error; err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if reloaded.CommentsCount != 0 {
		t.Errorf("CommentsCount = %d after deletes, want 0", reloaded.CommentsCount)
	}
}

func TestToggleFollow(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	actor := seedUser(t, db, "alice")
	target := seedUser(t, db, "bob")

	following, err := gs.ToggleFollow(actor.ID, target.ID)
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if !following {
		t.Error("first toggle should follow")
	}

	var a, b models.User
	if err := db.First(&a, "id = ?", actor.ID).Error; err != nil {
		t.Fatalf("failed to reload actor: %v", err)
	}
	if err := db.First(&b, "id = ?", target.ID).Error; err != nil {
		t.Fatalf("failed to reload target: %v", err)
	}
	if a.FollowingCount != 1 || b.FollowersCount != 1 {
		t.Errorf("counters after follow = (following %d, followers %d), want (1, 1)",
			a.FollowingCount, b.FollowersCount)
	}

	following, err = gs.ToggleFollow(actor.ID, target.ID)
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if following {
		t.Error("second toggle should unfollow")
	}

	var edges int64
	if err := db.Model(&models.Follow{}).Count(&edges).Error; err != nil {
		t.Fatalf("failed to count follow edges: %v", err)
	}
	if edges != 0 {
		t.Errorf("%d follow edges after unfollow, want 0", edges)
	}
}

func TestToggleFollowRejectsSelfAndMissing(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	actor := seedUser(t, db, "alice")

	if _, err := gs.ToggleFollow(actor.ID, actor.ID); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("self follow error = %v, want ErrInvalidOperation", err)
	}
	if _, err := gs.ToggleFollow(actor.ID, "missing-user"); !errors.Is(err, ErrNotFound) {
		t.Errorf("follow of missing user error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEntryCascades(t *testing.T) {
	db := newTestDB(t)
	gs := NewGraphService(db)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")

	trip := seedTrip(t, gs, owner.ID, models.VisibilityPublic)
	entry := seedEntry(t, gs, trip)

	comment, err := gs.AddComment(entry.ID, other.ID, "Nice", nil)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if _, _, err := gs.ToggleCommentLike(comment.ID, owner.ID); err != nil {
		t.Fatalf("comment like failed: %v", err)
	}
	if _, _, err := gs.ToggleEntryLike(entry.ID, other.ID); err != nil {
		t.Fatalf("entry like failed: %v", err)
	}

	if err := gs.DeleteEntry(entry.ID, other.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("delete by non-owner error = %v, want ErrAccessDenied", err)
	}
	if err := gs.DeleteEntry(entry.ID, owner.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}

	for name, model := range map[string]interface{}{
		"entries":       &models.JournalEntry{},
		"entry likes":   &models.EntryLike{},
		"comments":      &models.Comment{},
		"comment likes": &models.CommentLike{},
	} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("failed to count %s: %v", name, err)
		}
		if count != 0 {
			t.Errorf("%d %s left behind after entry delete, want 0", count, name)
		}
	}
}
