package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/zelenka/puzzlebox/model"
)

// Factory builds a fresh game instance for one session.
type Factory func(seed int64) model.Game

type GameServer struct {
	Registry map[string]Factory
	Seed     int64
	Upgrader *websocket.Upgrader
}

type SessionState int

const (
	SES_NEW SessionState = iota + 1
	SES_PLAY
	SES_OVER
	SES_ERR
)

// Session owns one websocket connection and one game instance. The
// read loop feeds Events, the session loop steps the game, the write
// loop drains MessagesToSend.
type Session struct {
	State    SessionState
	GameName string
	Factory  Factory
	Game     model.Game
	Seed     int64
	Conn     *websocket.Conn

	Events         chan model.ClientMessage
	MessagesToSend chan model.ServerMessage
	Done           chan struct{}

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
