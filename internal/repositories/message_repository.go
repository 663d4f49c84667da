package repositories

import (
	"context"
	"errors"
	"html"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"chat-service/internal/models"
	"chat-service/internal/observability"
	"chat-service/internal/rabbitmq"
)

var ErrEmptyMessage = errors.New("message body is empty")

type MessageRepository interface {
	Append(ctx context.Context, fromUserID, toUserID int64, body string) (*models.Message, error)
	GetConversation(ctx context.Context, userAID, userBID int64) ([]models.ConversationMessage, error)
	GetOutboundLog(ctx context.Context, fromUserID, toUserID int64) ([]models.Message, error)
}

type messageRepository struct {
	db        *sqlx.DB
	publisher rabbitmq.Publisher
}

func NewMessageRepository(db *sqlx.DB, publisher rabbitmq.Publisher) MessageRepository {
	return &messageRepository{db: db, publisher: publisher}
}

// NormalizeBody trims and escapes a message body before storage.
// Returns ErrEmptyMessage when nothing is left after trimming.
func NormalizeBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrEmptyMessage
	}
	return html.EscapeString(body), nil
}

func (r *messageRepository) Append(ctx context.Context, fromUserID, toUserID int64, body string) (*models.Message, error) {
	body, err := NormalizeBody(body)
	if err != nil {
		return nil, err
	}

	var msg models.Message
	err = r.db.QueryRowxContext(ctx, `
INSERT INTO messages (from_user_id, to_user_id, body, created_at)
VALUES ($1, $2, $3, NOW())
RETURNING id, from_user_id, to_user_id, body, created_at
`, fromUserID, toUserID, body).StructScan(&msg)
	if err != nil {
		return nil, err
	}

	r.logPublish(ctx, "message.sent", map[string]any{
		"message_id":   msg.ID,
		"from_user_id": msg.FromUserID,
		"to_user_id":   msg.ToUserID,
		"created_at":   msg.CreatedAt,
	})

	return &msg, nil
}

type conversationRow struct {
	ID        int64     `db:"id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	FromID    int64     `db:"from_id"`
	FromName  string    `db:"from_name"`
	ToID      int64     `db:"to_id"`
	ToName    string    `db:"to_name"`
}

// GetConversation returns every message between the two users, ascending
// by timestamp with the serial id breaking ties, so the result is the
// same regardless of argument order.
func (r *messageRepository) GetConversation(ctx context.Context, userAID, userBID int64) ([]models.ConversationMessage, error) {
	var rows []conversationRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT m.id, m.body, m.created_at,
f.id AS from_id, f.display_name AS from_name,
t.id AS to_id, t.display_name AS to_name
FROM messages m
JOIN users f ON f.id = m.from_user_id
JOIN users t ON t.id = m.to_user_id
WHERE (m.from_user_id=$1 AND m.to_user_id=$2)
OR (m.from_user_id=$2 AND m.to_user_id=$1)
ORDER BY m.created_at ASC, m.id ASC
`, userAID, userBID)
	if err != nil {
		return nil, err
	}

	conversation := make([]models.ConversationMessage, 0, len(rows))
	for _, row := range rows {
		conversation = append(conversation, models.ConversationMessage{
			ID:        row.ID,
			From:      models.Participant{ID: row.FromID, DisplayName: row.FromName},
			To:        models.Participant{ID: row.ToID, DisplayName: row.ToName},
			Body:      row.Body,
			CreatedAt: row.CreatedAt,
		})
	}
	return conversation, nil
}

// GetOutboundLog is the legacy one-directional view, newest first.
func (r *messageRepository) GetOutboundLog(ctx context.Context, fromUserID, toUserID int64) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs, `
SELECT id, from_user_id, to_user_id, body, created_at
FROM messages
WHERE from_user_id=$1 AND to_user_id=$2
ORDER BY created_at DESC, id DESC
`, fromUserID, toUserID)
	return msgs, err
}

func (r *messageRepository) logPublish(ctx context.Context, eventType string, payload any) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, eventType, payload); err != nil {
		observability.IncAMQPPublishError()
		log.Printf("warning: failed to publish %s: %v", eventType, err)
	}
}
