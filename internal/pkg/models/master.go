package models

import "time"

// Master represents a service provider eligible to be matched to orders.
// The record itself is owned by the external availability collaborator; the
// matching engine only reads it. LastLocation is filled in from the Redis
// location cache and stays nil when the master has never reported one.
type Master struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Specializations []string  `json:"specializations" db:"specializations"`
	IsAvailable     bool      `json:"is_available" db:"is_available"`
	LastLocation    *Location `json:"last_location,omitempty"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Candidate is an ephemeral projection of a master produced while evaluating
// a single order. It only lives for the duration of one matching pass.
type Candidate struct {
	MasterID   string   `json:"master_id"`
	Name       string   `json:"name"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}
