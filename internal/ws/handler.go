package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-service/internal/models"
)

// ConversationFetcher is the slice of the message store the broadcaster
// needs.
type ConversationFetcher interface {
	GetConversation(ctx context.Context, userAID, userBID int64) ([]models.ConversationMessage, error)
}

// UpdateSignal is the inbound refresh request for a conversation pair.
type UpdateSignal struct {
	Event     string `json:"event"`
	UserID    int64  `json:"user_id"`
	ContactID int64  `json:"contact_id"`
}

// Event is the outbound frame. For "messages" events Data carries the
// full ordered conversation snapshot, never a delta: clients replace
// their log rather than append.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Handler upgrades the connection and serves refresh signals until the
// client disconnects. Each "update" signal triggers a fresh snapshot of
// the named pair's conversation, broadcast to every connected client.
func Handler(hub *Hub, messages ConversationFetcher, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error("failed to upgrade websocket", "error", err)
			return
		}

		hub.Register(conn)
		defer func() {
			hub.Unregister(conn)
			conn.Close()
		}()

		for {
			var sig UpdateSignal
			if err := conn.ReadJSON(&sig); err != nil {
				return
			}
			if sig.Event != "update" {
				continue
			}

			conversation, err := messages.GetConversation(c.Request.Context(), sig.UserID, sig.ContactID)
			if err != nil {
				log.Error("failed to load conversation for broadcast", "error", err)
				continue
			}

			hub.Broadcast(Event{Event: "messages", Data: conversation})
		}
	}
}
