package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/constants"
	jwtpkg "github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/jwt"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/logger"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// session wraps a connected client with its write lock. gorilla/websocket
// allows a single concurrent writer per connection.
type session struct {
	client  *models.WebSocketClient
	writeMu sync.Mutex
}

// Manager owns the connection session table: who currently holds a live
// connection, under which role, and which ride the session is bound to.
// One live session per subject; a reconnect replaces the previous one.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session // keyed by subject ID
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket session manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	if claims.Role != constants.RoleUser && claims.Role != constants.RoleDriver {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unknown role")
	}

	return &models.WebSocketClient{
		SubjectID: claims.SubjectID,
		Role:      claims.Role,
	}, nil
}

// Register adds a client session and returns its session ID. An existing
// session for the same subject is replaced and its connection closed.
func (m *Manager) Register(client *models.WebSocketClient) string {
	client.SessionID = uuid.New().String()

	m.mu.Lock()
	old, exists := m.sessions[client.SubjectID]
	m.sessions[client.SubjectID] = &session{client: client}
	m.mu.Unlock()

	if exists && old.client.Conn != nil {
		old.client.Conn.Close()
	}
	return client.SessionID
}

// Deregister removes a session. It is a no-op when the subject has already
// reconnected under a newer session ID.
func (m *Manager) Deregister(client *models.WebSocketClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, exists := m.sessions[client.SubjectID]
	if exists && current.client.SessionID == client.SessionID {
		delete(m.sessions, client.SubjectID)
	}
}

// BindRide links a subject's live session to a ride so relay traffic can be
// routed to it
func (m *Manager) BindRide(subjectID, rideID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, exists := m.sessions[subjectID]; exists {
		s.client.BoundRideID = rideID
	}
}

// UnbindRide clears a subject's ride binding
func (m *Manager) UnbindRide(subjectID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, exists := m.sessions[subjectID]; exists {
		s.client.BoundRideID = ""
	}
}

// BoundRide returns the ride bound to the subject's live session, or the
// empty string. Readers must go through this accessor: the binding is
// mutated by other goroutines (accept, complete, cancel) under the
// manager's lock.
func (m *Manager) BoundRide(subjectID string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, exists := m.sessions[subjectID]; exists {
		return s.client.BoundRideID
	}
	return ""
}

// IsConnected reports whether the subject currently holds a live session
func (m *Manager) IsConnected(subjectID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.sessions[subjectID]
	return exists
}

// GetClient returns the live client for a subject
func (m *Manager) GetClient(subjectID string) (*models.WebSocketClient, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, exists := m.sessions[subjectID]
	if !exists {
		return nil, false
	}
	return s.client, true
}

// SendEvent sends a message to a specific client session
func (m *Manager) SendEvent(client *models.WebSocketClient, event string, data interface{}) error {
	m.mu.RLock()
	s, exists := m.sessions[client.SubjectID]
	m.mu.RUnlock()

	if !exists || s.client.SessionID != client.SessionID {
		return nil // session gone; relay traffic is best-effort
	}
	return m.write(s, event, data)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendEvent(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a notification to the subject's live session, if any.
// Missing or dead sessions are not an error: notifications are best-effort.
func (m *Manager) NotifyClient(subjectID string, event string, data interface{}) {
	m.mu.RLock()
	s, exists := m.sessions[subjectID]
	m.mu.RUnlock()

	if !exists {
		return
	}

	if err := m.write(s, event, data); err != nil {
		logger.Debug("Failed to notify client",
			logger.String("subject_id", subjectID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func (m *Manager) write(s *session, event string, data interface{}) error {
	if s.client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.client.Conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}
