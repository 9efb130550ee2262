package stream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeongen/internal/stream"
)

func TestHub_TracksAndClosesConnections(t *testing.T) {
	hub := stream.NewHub()
	accepted := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		accepted <- conn
		// Hold the handler open until the hub closes conn.
		_, _, _ = conn.Read(context.Background())
	}))
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	defer client.CloseNow()

	var conn *websocket.Conn
	select {
	case conn = <-accepted:
	case <-ctx.Done():
		t.Fatal("server never accepted")
	}

	assert.Equal(t, 0, hub.Len())
	hub.Add(conn)
	hub.Add(conn)
	assert.Equal(t, 1, hub.Len())
	hub.Remove(conn)
	assert.Equal(t, 0, hub.Len())

	// The client must be reading to answer the close handshake.
	readErr := make(chan error, 1)
	go func() {
		_, _, err := client.Read(ctx)
		readErr <- err
	}()

	hub.Add(conn)
	hub.CloseAll("bye")
	assert.Equal(t, 0, hub.Len())

	err = <-readErr
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}
