package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusArrived   RideStatus = "arrived"
	RideStatusStarted   RideStatus = "started"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusExpired   RideStatus = "expired"
)

var allowedTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested: {RideStatusAccepted, RideStatusCancelled, RideStatusExpired},
	RideStatusAccepted:  {RideStatusArrived, RideStatusCancelled},
	RideStatusArrived:   {RideStatusStarted, RideStatusCancelled},
	RideStatusStarted:   {RideStatusCompleted},
}

// CanTransitionTo reports whether the status may move to next
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	for _, candidate := range allowedTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the ride lifecycle
func (s RideStatus) IsTerminal() bool {
	switch s {
	case RideStatusCompleted, RideStatusCancelled, RideStatusExpired:
		return true
	}
	return false
}

// VehicleType identifies the requested vehicle class
type VehicleType string

const (
	VehicleTypeEconomy VehicleType = "economy"
	VehicleTypePremium VehicleType = "premium"
	VehicleTypeVan     VehicleType = "van"
)

// Known reports whether the vehicle type is one the dispatcher serves
func (v VehicleType) Known() bool {
	switch v {
	case VehicleTypeEconomy, VehicleTypePremium, VehicleTypeVan:
		return true
	}
	return false
}

// Ride represents a ride record. DriverID is set exactly once, at the accept
// transition, and never reassigned.
type Ride struct {
	RideID      uuid.UUID   `json:"ride_id"`
	UserID      uuid.UUID   `json:"user_id"`
	DriverID    *uuid.UUID  `json:"driver_id,omitempty"`
	Status      RideStatus  `json:"status"`
	From        Place       `json:"from"`
	To          Place       `json:"to"`
	VehicleType VehicleType `json:"vehicle_type"`
	Candidates  []string    `json:"candidate_driver_ids,omitempty"`
	RequestedAt time.Time   `json:"requested_at"`
	AcceptedAt  *time.Time  `json:"accepted_at,omitempty"`
	ArrivedAt   *time.Time  `json:"arrived_at,omitempty"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	EndedAt     *time.Time  `json:"ended_at,omitempty"`
	FareUSD     float64     `json:"fare_usd"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IsCandidate reports whether the driver is in the ride's candidate set
func (r *Ride) IsCandidate(driverID string) bool {
	for _, id := range r.Candidates {
		if id == driverID {
			return true
		}
	}
	return false
}

// IsParty reports whether the subject is the ride's rider or assigned driver
func (r *Ride) IsParty(subjectID string) bool {
	if r.UserID.String() == subjectID {
		return true
	}
	return r.DriverID != nil && r.DriverID.String() == subjectID
}

// RideDTO flattens the nested Place structs for database operations
type RideDTO struct {
	RideID      uuid.UUID      `db:"ride_id"`
	UserID      uuid.UUID      `db:"user_id"`
	DriverID    uuid.NullUUID  `db:"driver_id"`
	Status      RideStatus     `db:"status"`
	FromLat     float64        `db:"from_lat"`
	FromLng     float64        `db:"from_lng"`
	FromAddress string         `db:"from_address"`
	ToLat       float64        `db:"to_lat"`
	ToLng       float64        `db:"to_lng"`
	ToAddress   string         `db:"to_address"`
	VehicleType VehicleType    `db:"vehicle_type"`
	Candidates  pq.StringArray `db:"candidates"`
	RequestedAt time.Time      `db:"requested_at"`
	AcceptedAt  sql.NullTime   `db:"accepted_at"`
	ArrivedAt   sql.NullTime   `db:"arrived_at"`
	StartedAt   sql.NullTime   `db:"started_at"`
	EndedAt     sql.NullTime   `db:"ended_at"`
	FareUSD     float64        `db:"fare_usd"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// ToDTO converts a Ride to a RideDTO
func (r *Ride) ToDTO() *RideDTO {
	dto := &RideDTO{
		RideID:      r.RideID,
		UserID:      r.UserID,
		Status:      r.Status,
		FromLat:     r.From.Latitude,
		FromLng:     r.From.Longitude,
		FromAddress: r.From.Address,
		ToLat:       r.To.Latitude,
		ToLng:       r.To.Longitude,
		ToAddress:   r.To.Address,
		VehicleType: r.VehicleType,
		Candidates:  pq.StringArray(r.Candidates),
		RequestedAt: r.RequestedAt,
		FareUSD:     r.FareUSD,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.DriverID != nil {
		dto.DriverID = uuid.NullUUID{UUID: *r.DriverID, Valid: true}
	}
	dto.AcceptedAt = toNullTime(r.AcceptedAt)
	dto.ArrivedAt = toNullTime(r.ArrivedAt)
	dto.StartedAt = toNullTime(r.StartedAt)
	dto.EndedAt = toNullTime(r.EndedAt)
	return dto
}

// ToRide converts a RideDTO to a Ride
func (dto *RideDTO) ToRide() *Ride {
	ride := &Ride{
		RideID: dto.RideID,
		UserID: dto.UserID,
		Status: dto.Status,
		From: Place{
			Coordinates: Coordinates{Latitude: dto.FromLat, Longitude: dto.FromLng},
			Address:     dto.FromAddress,
		},
		To: Place{
			Coordinates: Coordinates{Latitude: dto.ToLat, Longitude: dto.ToLng},
			Address:     dto.ToAddress,
		},
		VehicleType: dto.VehicleType,
		Candidates:  []string(dto.Candidates),
		RequestedAt: dto.RequestedAt,
		FareUSD:     dto.FareUSD,
		UpdatedAt:   dto.UpdatedAt,
	}
	if dto.DriverID.Valid {
		id := dto.DriverID.UUID
		ride.DriverID = &id
	}
	ride.AcceptedAt = fromNullTime(dto.AcceptedAt)
	ride.ArrivedAt = fromNullTime(dto.ArrivedAt)
	ride.StartedAt = fromNullTime(dto.StartedAt)
	ride.EndedAt = fromNullTime(dto.EndedAt)
	return ride
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	tt := t.Time
	return &tt
}

// RideRequest is the inbound payload for a new ride
type RideRequest struct {
	From        Place       `json:"from"`
	To          Place       `json:"to"`
	VehicleType VehicleType `json:"vehicle_type"`
}

// RideEvent is the lifecycle payload published to NATS
type RideEvent struct {
	RideID    string     `json:"ride_id"`
	UserID    string     `json:"user_id"`
	DriverID  string     `json:"driver_id,omitempty"`
	Status    RideStatus `json:"status"`
	FareUSD   float64    `json:"fare_usd,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
