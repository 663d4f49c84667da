package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authpb "chat-service/proto/auth"
)

var ErrUserNotFound = errors.New("user not found")

// AuthClient is the subset of the auth gRPC client the service needs.
type AuthClient interface {
	GetUser(ctx context.Context, userID int64) (*authpb.GetUserResponse, error)
}

type UserService struct {
	auth AuthClient
}

type UserDTO struct {
	ID          int64  `json:"_id"`
	DisplayName string `json:"display_name"`
}

func NewUserService(auth AuthClient) *UserService {
	return &UserService{auth: auth}
}

// GetUserByID resolves an opaque user id to its public identity via the
// auth gateway.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*UserDTO, error) {
	resp, err := s.auth.GetUser(ctx, id)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("auth gateway: %w", err)
	}
	return &UserDTO{ID: resp.GetId(), DisplayName: resp.GetDisplayName()}, nil
}
