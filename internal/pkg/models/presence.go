package models

import "time"

// DriverPresence is a driver's current location/availability record, owned
// by the presence registry and mutated only by that driver's own location
// updates or state-machine driven availability flips
type DriverPresence struct {
	DriverID    string   `json:"driver_id"`
	Location    Location `json:"location"`
	IsAvailable bool     `json:"is_available"`
	Geohash     string   `json:"geohash,omitempty"`
}

// UpdatedAt returns the time of the last location update
func (p *DriverPresence) UpdatedAt() time.Time {
	return p.Location.Timestamp
}

// Stale reports whether the presence record is older than the freshness window
func (p *DriverPresence) Stale(now time.Time, window time.Duration) bool {
	return now.Sub(p.Location.Timestamp) > window
}

// AvailabilityRequest is the inbound payload for an availability flip
type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// NearbyDriver is one ranked entry of a geospatial query result
type NearbyDriver struct {
	DriverID      string  `json:"driver_id"`
	DistanceMiles float64 `json:"distance_miles"`
}
