package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
)

func TestAddAndRemoveClient(t *testing.T) {
	h := NewHub(nil)
	addr := chain.NewAddress()
	client := NewClient(h, nil, addr)

	h.addClient(client)
	assert.True(t, h.IsOnline(addr))

	h.removeClient(client)
	assert.False(t, h.IsOnline(addr))

	_, open := <-client.send
	assert.False(t, open, "send channel closes on removal")
}

func TestSlowClientEvictedOnce(t *testing.T) {
	h := NewHub(nil)
	addr := chain.NewAddress()
	client := NewClient(h, nil, addr)
	h.addClient(client)

	// Fill the send buffer so delivery hits the eviction path.
	for i := 0; i < cap(client.send); i++ {
		client.send <- []byte("x")
	}

	ev := &model.StreamEvent{Name: model.EventUserCreated, Subject: addr}
	h.sendToLocalAddress(addr, ev)

	// The read pump unregisters afterwards; closing again would panic.
	h.removeClient(client)
	assert.False(t, h.IsOnline(addr))
}

func TestBroadcastEvictsSlowClientOnce(t *testing.T) {
	h := NewHub(nil)
	addr := chain.NewAddress()
	slow := NewClient(h, nil, addr)
	h.addClient(slow)
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("x")
	}

	other := chain.NewAddress()
	live := NewClient(h, nil, other)
	h.addClient(live)

	h.broadcastToLocal(&model.StreamEvent{Name: model.EventUserCreated})

	select {
	case msg := <-live.send:
		assert.NotEmpty(t, msg)
	default:
		t.Fatal("live client should have received the broadcast")
	}

	h.removeClient(slow)
	h.removeClient(live)
}