package models

import "time"

// Message is immutable once stored; the serial id doubles as the
// insertion sequence that breaks timestamp ties.
type Message struct {
	ID         int64     `db:"id" json:"_id"`
	FromUserID int64     `db:"from_user_id" json:"from"`
	ToUserID   int64     `db:"to_user_id" json:"to"`
	Body       string    `db:"body" json:"message"`
	CreatedAt  time.Time `db:"created_at" json:"date"`
}

// Participant is the public identity attached to each side of a
// conversation message.
type Participant struct {
	ID          int64  `json:"_id"`
	DisplayName string `json:"display_name"`
}

// ConversationMessage is a message with both endpoints resolved to
// public identities, as served to clients.
type ConversationMessage struct {
	ID        int64       `json:"_id"`
	From      Participant `json:"from"`
	To        Participant `json:"to"`
	Body      string      `json:"message"`
	CreatedAt time.Time   `json:"date"`
}
