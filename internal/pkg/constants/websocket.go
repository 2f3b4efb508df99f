package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"

	// Location events
	EventLocationUpdate = "location_update"

	// Dispatch events
	EventRideOffer    = "ride_offer"
	EventRideAccept   = "ride_accept"
	EventRideAccepted = "ride_accepted"
	EventRideRejected = "ride_rejected"
	EventRideExpired  = "ride_expired"

	// Ride lifecycle events
	EventRideArrived   = "ride_arrived"
	EventRideStarted   = "ride_started"
	EventRideCompleted = "ride_completed"
	EventRideCancelled = "ride_cancelled"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorUnauthorized    = "unauthorized"
	ErrorInternalError   = "internal_error"
	ErrorInvalidLocation = "invalid_location"
	ErrorRideNotFound    = "ride_not_found"
	ErrorRideUpdate      = "ride_update_failed"
)

// Session roles
const (
	RoleUser   = "user"
	RoleDriver = "driver"
)
