package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"chat-service/internal/models"
	"chat-service/internal/observability"
	"chat-service/internal/rabbitmq"
)

var (
	ErrInviteForbidden = errors.New("invite decision not allowed")
	ErrDuplicateInvite = errors.New("invite already pending")
)

const uniqueViolation = "23505"

type ContactRepository interface {
	CreateInvite(ctx context.Context, fromUserID, toUserID int64) (*models.Invite, error)
	GetPendingInvites(ctx context.Context, userID int64) ([]models.Invite, error)
	AcceptInvite(ctx context.Context, inviteID, userID int64) error
	RejectInvite(ctx context.Context, inviteID, userID int64) error
	ListContacts(ctx context.Context, userID int64) ([]int64, error)
	HasPendingInvite(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	AreContacts(ctx context.Context, userID, otherID int64) (bool, error)
	RemoveContact(ctx context.Context, userID, contactID int64) error
}

type contactRepository struct {
	db        *sqlx.DB
	publisher rabbitmq.Publisher
}

func NewContactRepository(db *sqlx.DB, publisher rabbitmq.Publisher) ContactRepository {
	return &contactRepository{db: db, publisher: publisher}
}

func (r *contactRepository) CreateInvite(ctx context.Context, fromUserID, toUserID int64) (*models.Invite, error) {
	var inv models.Invite
	err := r.db.QueryRowxContext(ctx, `
INSERT INTO invites (from_user_id, to_user_id)
VALUES ($1, $2)
RETURNING id, from_user_id, to_user_id, created_at
`, fromUserID, toUserID).StructScan(&inv)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateInvite
		}
		return nil, err
	}

	r.logPublish(ctx, "invite.created", map[string]any{
		"invite_id":    inv.ID,
		"from_user_id": inv.FromUserID,
		"to_user_id":   inv.ToUserID,
		"created_at":   inv.CreatedAt,
	})

	return &inv, nil
}

// GetPendingInvites returns invites addressed to userID, newest first.
// Invites whose sender is already a contact are filtered out: invite
// creation and edge creation are separate writes, so a stale invite can
// survive a race with an accept through another channel.
func (r *contactRepository) GetPendingInvites(ctx context.Context, userID int64) ([]models.Invite, error) {
	var invs []models.Invite
	err := r.db.SelectContext(ctx, &invs, `
SELECT id, from_user_id, to_user_id, created_at
FROM invites
WHERE to_user_id=$1
AND NOT EXISTS (
SELECT 1 FROM contacts WHERE user_id=$1 AND contact_id=invites.from_user_id
)
ORDER BY created_at DESC, id DESC
`, userID)
	return invs, err
}

// AcceptInvite applies three idempotent writes in a fixed order: both
// directions of the contact edge, then removal of the invite row. There
// is no wrapping transaction; a crash mid-sequence leaves a state from
// which a retry converges on the same fixed point, and a one-sided edge
// left by earlier skew is repaired rather than treated as a conflict.
func (r *contactRepository) AcceptInvite(ctx context.Context, inviteID, userID int64) error {
	var inv models.Invite
	if err := r.db.GetContext(ctx, &inv, `SELECT id, from_user_id, to_user_id, created_at FROM invites WHERE id=$1`, inviteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return err
	}
	if inv.ToUserID != userID {
		return ErrInviteForbidden
	}

	if err := r.insertContact(ctx, inv.FromUserID, inv.ToUserID); err != nil {
		return err
	}
	if err := r.insertContact(ctx, inv.ToUserID, inv.FromUserID); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE id=$1`, inviteID); err != nil {
		return err
	}

	r.logPublish(ctx, "contact.created", map[string]any{
		"user_id":    inv.FromUserID,
		"contact_id": inv.ToUserID,
		"invite_id":  inv.ID,
	})

	return nil
}

func (r *contactRepository) RejectInvite(ctx context.Context, inviteID, userID int64) error {
	var toUserID int64
	if err := r.db.GetContext(ctx, &toUserID, `SELECT to_user_id FROM invites WHERE id=$1`, inviteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return err
	}
	if toUserID != userID {
		return ErrInviteForbidden
	}
	res, err := r.db.ExecContext(ctx, `
DELETE FROM invites
WHERE id=$1 AND to_user_id=$2
`, inviteID, userID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *contactRepository) ListContacts(ctx context.Context, userID int64) ([]int64, error) {
	var contacts []int64
	err := r.db.SelectContext(ctx, &contacts, `
SELECT contact_id
FROM contacts
WHERE user_id=$1
ORDER BY contact_id
`, userID)
	return contacts, err
}

func (r *contactRepository) HasPendingInvite(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
SELECT EXISTS(
SELECT 1 FROM invites
WHERE from_user_id=$1 AND to_user_id=$2
)
`, fromUserID, toUserID)
	return exists, err
}

func (r *contactRepository) AreContacts(ctx context.Context, userID, otherID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
SELECT EXISTS(
SELECT 1 FROM contacts WHERE user_id=$1 AND contact_id=$2
)
`, userID, otherID)
	return exists, err
}

func (r *contactRepository) RemoveContact(ctx context.Context, userID, contactID int64) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM contacts
WHERE (user_id=$1 AND contact_id=$2) OR (user_id=$2 AND contact_id=$1)
`, userID, contactID)
	return err
}

func (r *contactRepository) insertContact(ctx context.Context, userID, contactID int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO contacts (user_id, contact_id) VALUES ($1, $2)
ON CONFLICT (user_id, contact_id) DO NOTHING
`, userID, contactID)
	return err
}

func (r *contactRepository) logPublish(ctx context.Context, eventType string, payload any) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, eventType, payload); err != nil {
		observability.IncAMQPPublishError()
		log.Printf("warning: failed to publish %s: %v", eventType, err)
	}
}
