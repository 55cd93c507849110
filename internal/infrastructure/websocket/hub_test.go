package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newHubClient(id, kind string, buffer int) *Client {
	return &Client{
		ID:   id,
		Kind: kind,
		Send: make(chan []byte, buffer),
	}
}

func receive(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case message := <-ch:
		return message
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub()
	hub.Start(ctx)
	return hub
}

func TestNewCatalogClientReceivesLastCatalog(t *testing.T) {
	hub := startHub(t)

	hub.BroadcastCatalog([]byte(`{"type":"catalog","cars":[]}`))

	client := newHubClient("c1", KindCatalog, 1)
	hub.Register <- client

	assert.Equal(t, `{"type":"catalog","cars":[]}`, string(receive(t, client.Send)))
}

func TestOperatorClientGetsNoCatalogReplay(t *testing.T) {
	hub := startHub(t)

	hub.BroadcastCatalog([]byte("cars"))

	operator := newHubClient("op1", KindOperator, 1)
	hub.Register <- operator

	// A later broadcast still proves the loop has run past the
	// registration without replaying to the operator.
	catalog := newHubClient("c1", KindCatalog, 1)
	hub.Register <- catalog
	receive(t, catalog.Send)

	assert.Empty(t, operator.Send)
}

func TestBroadcastCatalogReachesCatalogClientsOnly(t *testing.T) {
	hub := startHub(t)

	catalog := newHubClient("c1", KindCatalog, 2)
	operator := newHubClient("op1", KindOperator, 2)
	hub.Register <- catalog
	hub.Register <- operator

	hub.BroadcastCatalog([]byte("fresh set"))

	assert.Equal(t, "fresh set", string(receive(t, catalog.Send)))
	assert.Empty(t, operator.Send)
}

func TestNotifyOperatorsReachesOperator(t *testing.T) {
	hub := startHub(t)

	operator := newHubClient("op1", KindOperator, 4)
	hub.Register <- operator

	// Delivery is fire and forget, so keep offering until the loop
	// takes one.
	assert.Eventually(t, func() bool {
		hub.NotifyOperators([]byte("new inquiry"))
		select {
		case message := <-operator.Send:
			return string(message) == "new inquiry"
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestStaleClientIsDropped(t *testing.T) {
	hub := startHub(t)

	stale := newHubClient("c1", KindCatalog, 1)
	hub.Register <- stale

	// First broadcast fills the buffer; the second finds it full and
	// drops the client, closing its channel.
	hub.BroadcastCatalog([]byte("one"))
	hub.BroadcastCatalog([]byte("two"))

	assert.Equal(t, "one", string(receive(t, stale.Send)))

	assert.Eventually(t, func() bool {
		select {
		case _, open := <-stale.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := startHub(t)

	client := newHubClient("c1", KindCatalog, 1)
	hub.Register <- client
	hub.Unregister <- client

	_, open := <-client.Send
	assert.False(t, open)

	// A later broadcast must not panic on the closed channel.
	hub.BroadcastCatalog([]byte("after"))
}
