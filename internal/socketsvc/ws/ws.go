package ws

import (
	"encoding/json"
	"sync"

	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	MsgPing = "ping"
	MsgPong = "pong"
)

// client serializes writes; a websocket connection allows one writer at a time.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

type Ws struct {
	connMap sync.Map // socketId -> *client
}

func NewWs() *Ws {
	return &Ws{}
}

// handle socket message from web clients
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case MsgPing:
		s.Send(socketId, &comm.WSMessage{Type: MsgPong, SocketId: socketId})
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, &client{conn: conn})
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
}

// Count reports the number of open connections.
func (s *Ws) Count() int {
	n := 0
	s.connMap.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Send writes m to one socket. Unknown sockets are ignored.
func (s *Ws) Send(socketId string, m *comm.WSMessage) {
	c, ok := s.connMap.Load(socketId)
	if !ok {
		return
	}
	if err := c.(*client).writeJSON(m); err != nil {
		log.Errorf("Failed to write to socket %s: %v", socketId, err)
	}
}

// Broadcast writes m to every open socket.
func (s *Ws) Broadcast(m *comm.WSMessage) {
	s.connMap.Range(func(key, value any) bool {
		if err := value.(*client).writeJSON(m); err != nil {
			log.Errorf("Failed to write to socket %s: %v", key, err)
		}
		return true
	})
}

// SendError reports a bad client message back on the same socket.
func (s *Ws) SendError(socketId, reason string) {
	data, err := json.Marshal(map[string]string{"error": reason})
	if err != nil {
		log.Errorf("Failed to marshal error for socket %s: %v", socketId, err)
		return
	}
	s.Send(socketId, &comm.WSMessage{Type: "error", Data: data, SocketId: socketId})
}
