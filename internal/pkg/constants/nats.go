package constants

// NATS Subjects
const (
	// Ride lifecycle events
	SubjectRideRequested = "ride.requested"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideArrived   = "ride.arrived"
	SubjectRideStarted   = "ride.started"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"
	SubjectRideExpired   = "ride.expired"

	// Dispatch rounds
	SubjectDispatchOffered = "dispatch.offered"

	// Location relay
	SubjectLocationUpdate = "location.update"
)
