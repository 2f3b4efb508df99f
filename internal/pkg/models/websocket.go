package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSLocationUpdate is the inbound location_update payload. IsAvailable is a
// pointer so an omitted flag keeps the driver available rather than silently
// benching them.
type WSLocationUpdate struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// WSRideMessage is the inbound payload for ride lifecycle events
type WSRideMessage struct {
	RideID string `json:"ride_id"`
}

// WebSocketClient represents a connected WebSocket session
type WebSocketClient struct {
	SessionID   string
	SubjectID   string
	Role        string
	BoundRideID string
	Conn        *websocket.Conn
}

// WebSocketClaims represents JWT claims carried by a WebSocket connection
type WebSocketClaims struct {
	SubjectID string `json:"user_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
