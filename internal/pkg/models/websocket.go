package models

import "github.com/golang-jwt/jwt/v4"

// WebSocketClient represents an authenticated websocket connection.
type WebSocketClient struct {
	UserID string
	Role   string
}

// WebSocketClaims are the JWT claims accepted on websocket upgrade.
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// WSMessage is the envelope for every websocket frame we send.
type WSMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// WSErrorPayload is the payload of an error frame.
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
