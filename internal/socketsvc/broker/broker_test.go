package broker

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	subject string
	handler nats.MsgHandler
	err     error
}

func (f *fakeConn) Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error) {
	f.subject, f.handler = subj, cb
	return &nats.Subscription{Subject: subj}, f.err
}

func TestRelaysGameEvents(t *testing.T) {
	conn := &fakeConn{}
	var sent []*comm.WSMessage
	b := NewBroker(conn, func(m *comm.WSMessage) { sent = append(sent, m) })

	_, err := b.Subscribe("game.events")
	require.NoError(t, err)
	assert.Equal(t, "game.events", conn.subject)

	payload, err := json.Marshal(comm.GameEvent{Type: comm.EventGameDeleted, GameID: 4})
	require.NoError(t, err)
	conn.handler(&nats.Msg{Subject: "game.events", Data: payload})

	require.Len(t, sent, 1)
	assert.Equal(t, comm.EventGameDeleted, sent[0].Type)
	assert.JSONEq(t, string(payload), string(sent[0].Data))
}

func TestDropsUnknownAndMalformed(t *testing.T) {
	conn := &fakeConn{}
	var sent []*comm.WSMessage
	b := NewBroker(conn, func(m *comm.WSMessage) { sent = append(sent, m) })
	_, err := b.Subscribe("game.events")
	require.NoError(t, err)

	conn.handler(&nats.Msg{Data: []byte(`{"type":"game-paused"}`)})
	conn.handler(&nats.Msg{Data: []byte(`{`)})

	assert.Empty(t, sent)
}

func TestSubscribeError(t *testing.T) {
	b := NewBroker(&fakeConn{err: errors.New("no responders")}, func(*comm.WSMessage) {})

	_, err := b.Subscribe("game.events")

	assert.Error(t, err)
}
