// File: /services/access_policy_test.go
package services

import (
	"testing"

	"wanderlog-api/models"
)

func TestCanReadTrip(t *testing.T) {
	tests := []struct {
		name        string
		privacy     string
		requesterID string
		want        bool
	}{
		{"public trip, anonymous", models.VisibilityPublic, "", true},
		{"public trip, stranger", models.VisibilityPublic, "stranger", true},
		{"public trip, owner", models.VisibilityPublic, "owner", true},
		{"private trip, anonymous", models.VisibilityPrivate, "", false},
		{"private trip, stranger", models.VisibilityPrivate, "stranger", false},
		{"private trip, owner", models.VisibilityPrivate, "owner", true},
		{"friends trip, anonymous", models.VisibilityFriends, "", false},
		{"friends trip, stranger", models.VisibilityFriends, "stranger", false},
		{"friends trip, owner", models.VisibilityFriends, "owner", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := &models.Trip{UserID: "owner", Privacy: tt.privacy}
			if got := CanReadTrip(trip, tt.requesterID); got != tt.want {
				t.Errorf("CanReadTrip(privacy=%s, requester=%q) = %v, want %v",
					tt.privacy, tt.requesterID, got, tt.want)
			}
		})
	}
}

func TestCanWriteTrip(t *testing.T) {
	trip := &models.Trip{UserID: "owner", Privacy: models.VisibilityPublic}

	if !CanWriteTrip(trip, "owner") {
		t.Error("owner should be able to write their own trip")
	}
	if CanWriteTrip(trip, "stranger") {
		t.Error("stranger should not be able to write a public trip")
	}
	if CanWriteTrip(trip, "") {
		t.Error("anonymous requester should never have write access")
	}
}

func TestCanDeleteComment(t *testing.T) {
	comment := &models.Comment{UserID: "author"}
	trip := &models.Trip{UserID: "trip-owner"}

	if !CanDeleteComment(comment, trip, "author") {
		t.Error("comment author should be able to delete their comment")
	}
	if !CanDeleteComment(comment, trip, "trip-owner") {
		t.Error("trip owner should be able to delete comments under their trip")
	}
	if CanDeleteComment(comment, trip, "stranger") {
		t.Error("stranger should not be able to delete the comment")
	}
	if CanDeleteComment(comment, trip, "") {
		t.Error("anonymous requester should not be able to delete the comment")
	}
}
