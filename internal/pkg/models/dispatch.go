package models

import "time"

// RideOffer is the notification fanned out to every candidate driver when a
// dispatch round opens
type RideOffer struct {
	RideID        string      `json:"ride_id"`
	From          Place       `json:"from"`
	To            Place       `json:"to"`
	VehicleType   VehicleType `json:"vehicle_type"`
	DistanceMiles float64     `json:"distance_miles"`
	ExpiresAt     time.Time   `json:"expires_at"`
}

// Accept outcome reasons reported to losing drivers
const (
	AcceptReasonAlreadyAccepted = "already_accepted"
	AcceptReasonNotACandidate   = "not_a_candidate"
	AcceptReasonExpired         = "expired"
)

// AcceptResult is the outcome of a driver's accept attempt. At most one
// attempt per ride observes Won=true.
type AcceptResult struct {
	RideID string `json:"ride_id"`
	Won    bool   `json:"won"`
	Reason string `json:"reason,omitempty"`
}

// DispatchEvent is the dispatch round payload published to NATS
type DispatchEvent struct {
	RideID     string    `json:"ride_id"`
	UserID     string    `json:"user_id"`
	Candidates []string  `json:"candidate_driver_ids"`
	ExpiresAt  time.Time `json:"expires_at"`
}
