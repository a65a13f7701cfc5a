// File: /services/access_policy.go
package services

import (
	"wanderlog-api/models"
)

// Access policy for trips, entries and comments. Pure decision functions,
// no database access: callers resolve the resources first (a missing
// resource is NotFound before any policy question is asked) and pass the
// requester's user id, or "" for an anonymous request.
//
// The "friends" privacy tier is stored in the schema but evaluated the
// same as "private": there is no friendship membership check, only
// follow edges, and follow edges are not friendship.

// CanReadTrip decides read access to a trip and everything under it
func CanReadTrip(trip *models.Trip, requesterID string) bool {
	if trip.Privacy == models.VisibilityPublic {
		return true
	}
	return requesterID != "" && requesterID == trip.UserID
}

// CanWriteTrip decides mutation authority over a trip
func CanWriteTrip(trip *models.Trip, requesterID string) bool {
	return requesterID != "" && requesterID == trip.UserID
}

// CanWriteEntry resolves entry mutation authority through the parent
// trip. Entries carry no owner of their own.
func CanWriteEntry(trip *models.Trip, requesterID string) bool {
	return CanWriteTrip(trip, requesterID)
}

// CanDeleteComment permits the comment's own author as well as the owner
// of the trip the comment's entry belongs to.
func CanDeleteComment(comment *models.Comment, trip *models.Trip, requesterID string) bool {
	if requesterID == "" {
		return false
	}
	return requesterID == comment.UserID || requesterID == trip.UserID
}
