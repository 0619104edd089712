package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// MasterLocationUpdate is a location report for a master, consumed from the
// external availability/location reporting collaborator.
type MasterLocationUpdate struct {
	MasterID  string    `json:"master_id"`
	IsActive  bool      `json:"is_active"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
