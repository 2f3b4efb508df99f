package models

import "time"

// Coordinates is a longitude/latitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a coordinate pair with a human-readable address
type Place struct {
	Coordinates
	Address string `json:"address"`
}

// Location is a timestamped coordinate pair, used for presence records and
// relay updates
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Coords returns the coordinate pair of the location
func (l Location) Coords() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// LocationUpdate is the relay payload forwarded to the bound counterparty
// and published for external consumers
type LocationUpdate struct {
	RideID    string    `json:"ride_id,omitempty"`
	SubjectID string    `json:"subject_id"`
	Role      string    `json:"role"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
