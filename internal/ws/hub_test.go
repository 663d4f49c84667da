package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"chat-service/internal/models"
)

type fixedConversation struct {
	messages []models.ConversationMessage
}

func (f *fixedConversation) GetConversation(ctx context.Context, userAID, userBID int64) ([]models.ConversationMessage, error) {
	return f.messages, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupWSServer(t *testing.T, hub *Hub, fetcher ConversationFetcher) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", Handler(hub, fetcher, discardLogger()))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", n, hub.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestUpdateBroadcastsSnapshotToAllClients(t *testing.T) {
	snapshot := []models.ConversationMessage{
		{
			ID:        1,
			From:      models.Participant{ID: 1, DisplayName: "alice"},
			To:        models.Participant{ID: 2, DisplayName: "bob"},
			Body:      "hi",
			CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	hub := NewHub(discardLogger())
	srv := setupWSServer(t, hub, &fixedConversation{messages: snapshot})

	sender := dialWS(t, srv)
	observerA := dialWS(t, srv)
	observerB := dialWS(t, srv)
	waitForClients(t, hub, 3)

	require.NoError(t, sender.WriteJSON(UpdateSignal{Event: "update", UserID: 1, ContactID: 2}))

	// Every connected client receives the snapshot, the sender included.
	for _, conn := range []*websocket.Conn{sender, observerA, observerB} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

		var frame struct {
			Event string                       `json:"event"`
			Data  []models.ConversationMessage `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&frame))
		require.Equal(t, "messages", frame.Event)
		require.Len(t, frame.Data, 1)
		require.Equal(t, "hi", frame.Data[0].Body)
		require.Equal(t, int64(1), frame.Data[0].From.ID)
	}
}

func TestNonUpdateSignalsAreIgnored(t *testing.T) {
	hub := NewHub(discardLogger())
	srv := setupWSServer(t, hub, &fixedConversation{})

	conn := dialWS(t, srv)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.WriteJSON(UpdateSignal{Event: "ping"}))
	require.NoError(t, conn.WriteJSON(UpdateSignal{Event: "update", UserID: 1, ContactID: 2}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	// The first frame delivered must come from the update, not the ping.
	var frame Event
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, "messages", frame.Event)
}

func TestUnregisterOnDisconnect(t *testing.T) {
	hub := NewHub(discardLogger())
	srv := setupWSServer(t, hub, &fixedConversation{})

	conn := dialWS(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected client to be unregistered, got %d", hub.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
