package broker

import (
	"encoding/json"

	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// subscriber is the part of *nats.Conn the broker needs.
type subscriber interface {
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// Broker relays game events from NATS to websocket clients. NATS delivers
// the messages of one subscription sequentially.
type Broker struct {
	Conn      subscriber
	Broadcast func(*comm.WSMessage)
}

func NewBroker(conn subscriber, fncBroadcast func(*comm.WSMessage)) *Broker {
	return &Broker{
		Conn:      conn,
		Broadcast: fncBroadcast,
	}
}

// consume game events published by the game service
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// handleMessages receive message from game service
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	event := comm.GameEvent{}
	if err := json.Unmarshal(msgNats.Data, &event); err != nil {
		log.Errorf("Error: malformed game event on %s: %s", msgNats.Subject, err)
		return
	}

	switch event.Type {
	case comm.EventGameStarted, comm.EventGameStatusUpdated, comm.EventGameDeleted:
		b.Broadcast(&comm.WSMessage{Type: event.Type, Data: msgNats.Data})
	default:
		log.Errorf("Unknown game event %q", event.Type)
	}
}
