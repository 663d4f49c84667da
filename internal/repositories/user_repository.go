package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"chat-service/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListCandidates(ctx context.Context, userID int64, limit int) ([]models.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT id, display_name FROM users WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListCandidates returns users that userID could still invite: not
// themselves, not already a contact, and with no invite from userID
// outstanding.
func (r *userRepository) ListCandidates(ctx context.Context, userID int64, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `
SELECT u.id, u.display_name
FROM users u
WHERE u.id <> $1
AND NOT EXISTS (SELECT 1 FROM contacts c WHERE c.user_id=$1 AND c.contact_id=u.id)
AND NOT EXISTS (SELECT 1 FROM invites i WHERE i.from_user_id=$1 AND i.to_user_id=u.id)
ORDER BY u.id
LIMIT $2
`, userID, limit)
	return users, err
}
