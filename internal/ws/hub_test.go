package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	a := &Client{Send: make(chan []byte, 1)}
	b := &Client{Send: make(chan []byte, 1)}
	hub.Register(a)
	hub.Register(b)
	assert.Equal(t, 2, hub.ClientCount())

	hub.BroadcastAll(map[string]string{"platform": "skillbox"})

	for _, c := range []*Client{a, b} {
		msg := <-c.Send
		var payload map[string]string
		require.NoError(t, json.Unmarshal(msg, &payload))
		assert.Equal(t, "skillbox", payload["platform"])
	}
}

func TestSlowClientIsSkipped(t *testing.T) {
	hub := NewHub()
	slow := &Client{Send: make(chan []byte)} // unbuffered, nobody reading
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.BroadcastAll("payload")
		close(done)
	}()
	<-done // must not block
}

func TestCloseUnregistersOnce(t *testing.T) {
	hub := NewHub()
	c := &Client{Send: make(chan []byte, 1)}
	hub.Register(c)

	c.Close()
	c.Close() // second close must be a no-op
	assert.Equal(t, 0, hub.ClientCount())

	_, open := <-c.Send
	assert.False(t, open)
}
