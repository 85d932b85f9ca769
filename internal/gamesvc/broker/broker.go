package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/avvvet/playhub-services/internal/gamesvc/models"
	log "github.com/sirupsen/logrus"
)

// publisher is the part of *nats.Conn the broker needs.
type publisher interface {
	Publish(subj string, data []byte) error
}

// Broker publishes game lifecycle events. A Broker without a connection
// drops every event, which is how the service runs when NATS is not
// configured.
type Broker struct {
	conn  publisher
	topic string
	now   func() time.Time
}

func NewBroker(conn publisher, topic string) *Broker {
	return &Broker{conn: conn, topic: topic, now: time.Now}
}

// PublishGameEvent sends one event. Failures are logged and never returned:
// the local write the event describes has already committed.
func (b *Broker) PublishGameEvent(ctx context.Context, eventType string, game *models.Game) {
	if b == nil || b.conn == nil || game == nil {
		return
	}

	event := comm.GameEvent{
		Type:   eventType,
		GameID: game.ID,
		Name:   game.Name,
		Status: string(game.Status),
		At:     b.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Errorf("unable to marshal %s event for game %d: %s", eventType, game.ID, err)
		return
	}

	if err := b.conn.Publish(b.topic, payload); err != nil {
		log.Errorf("Error publishing %s to topic %s: %s", eventType, b.topic, err)
	}
}
