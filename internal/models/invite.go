package models

import "time"

// Invite is a pending, directed contact request. Rows are deleted on
// accept or reject; there is no resting "accepted" or "rejected" state.
type Invite struct {
	ID         int64     `db:"id" json:"id"`
	FromUserID int64     `db:"from_user_id" json:"from_user_id"`
	ToUserID   int64     `db:"to_user_id" json:"to_user_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
