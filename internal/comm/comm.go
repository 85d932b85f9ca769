package comm

import (
	"encoding/json"
	"time"
)

// Bodies exchanged between the game and player services.

type RegisterPlayerRequest struct {
	Name   *string `json:"name" validate:"required"`
	GameID *int64  `json:"gameId"`
}

type UpdatePlayerGameRequest struct {
	GameID *int64 `json:"gameId" validate:"required"`
}

type GameSearchResponse struct {
	Games []int64 `json:"games"`
}

// Game lifecycle events published on NATS and relayed to websocket clients.

const (
	EventGameStarted       = "game-started"
	EventGameStatusUpdated = "game-status-updated"
	EventGameDeleted       = "game-deleted"
)

type GameEvent struct {
	Type   string    `json:"type"`
	GameID int64     `json:"gameId"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type WSMessage struct {
	Type     string          `json:"type"` // e.g. "game-started", "pong"
	Data     json.RawMessage `json:"data,omitempty"`
	SocketId string          `json:"socketid,omitempty"`
}
