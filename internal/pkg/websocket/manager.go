package websocket

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	conns    map[string]*websocket.Conn
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns: make(map[string]*websocket.Conn),
		cfg:   jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection.
// The connection is registered for pushes until handleClient returns.
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

	m.addConn(client.UserID, ws)
	defer m.removeConn(client.UserID)

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

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (m *Manager) addConn(userID string, conn *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	m.conns[userID] = conn
}

func (m *Manager) removeConn(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.conns, userID)
}

// SendMessage sends an event frame on a WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  data,
	})
}

// SendErrorMessage sends an error frame on a WebSocket connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, "error", models.WSErrorPayload{
		Code:    code,
		Message: message,
	})
}

// NotifyClient pushes an event to a connected user, if present.
// Disconnected users are skipped silently; pushes are best-effort.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	conn, exists := m.conns[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(conn, event, data); err != nil {
		logger.Warn("Failed to push websocket event",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}
