// Package apperrors defines the recoverable error taxonomy shared by the
// dispatch core. Handlers map these onto HTTP statuses; none of them should
// ever crash a connection or leave a ride half-transitioned.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates an unknown ride, driver or session
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the actor is not authorized for the transition
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition indicates a state machine precondition failed
	ErrInvalidTransition = errors.New("invalid ride state transition")
	// ErrInvalidCoordinates indicates malformed geospatial input
	ErrInvalidCoordinates = errors.New("invalid location coordinates")
	// ErrInvalidVehicleType indicates a vehicle class the dispatcher does not serve
	ErrInvalidVehicleType = errors.New("unknown vehicle type")
	// ErrNoCandidates indicates dispatch found no drivers within the radius
	ErrNoCandidates = errors.New("no available drivers found")
	// ErrExpired indicates the dispatch round timed out with no acceptance
	ErrExpired = errors.New("dispatch round expired")
	// ErrAlreadyResolved indicates the acceptance race was already won
	ErrAlreadyResolved = errors.New("ride already accepted")
	// ErrUnavailable indicates the backing store could not confirm a write;
	// the operation is retryable
	ErrUnavailable = errors.New("storage unavailable")
)

// StatusCode maps a domain error to an HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAlreadyResolved):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCoordinates), errors.Is(err, ErrInvalidVehicleType):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoCandidates):
		return http.StatusNotFound
	case errors.Is(err, ErrExpired):
		return http.StatusGone
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
