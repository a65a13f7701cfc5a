// File: /utils/validators_test.go
package utils

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org", "a_b%c@host.io"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@host", "user @example.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "wander.log_99", "Traveler"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}

	invalid := []string{"", "ab", "has space", "dash-name", "ütf8name"}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(45.5) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("in-range latitudes rejected")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-91) {
		t.Error("out-of-range latitudes accepted")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) || !IsValidLongitude(0) {
		t.Error("in-range longitudes rejected")
	}
	if IsValidLongitude(180.1) || IsValidLongitude(-200) {
		t.Error("out-of-range longitudes accepted")
	}
}
