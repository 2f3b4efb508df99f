package constants

// Redis key formats
const (
	// Presence registry
	KeyDriverPresence   = "driver:presence:%s" // Format: driver:presence:{driver_id}
	KeyDriverGeo        = "drivers:geo"        // Geo set of all driver locations
	KeyAvailableDrivers = "drivers:available"  // Set of available driver IDs

	// Location relay
	KeyRideLocation = "ride:location:%s:%s" // Format: ride:location:{ride_id}:{role}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAvailable = "available"
	FieldUpdatedAt = "updated_at"
	FieldGeohash   = "geohash"
)
