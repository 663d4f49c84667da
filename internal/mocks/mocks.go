package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chat-service/internal/models"
	"chat-service/internal/rabbitmq"
	"chat-service/internal/repositories"
	authpb "chat-service/proto/auth"
)

// MockAuthClient mocks the auth gRPC client interactions.
type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) GetUser(ctx context.Context, userID int64) (*authpb.GetUserResponse, error) {
	args := m.Called(ctx, userID)
	var resp *authpb.GetUserResponse
	if val := args.Get(0); val != nil {
		resp = val.(*authpb.GetUserResponse)
	}
	return resp, args.Error(1)
}

func (m *MockAuthClient) ValidateToken(ctx context.Context, token string) (*authpb.ValidateTokenResponse, error) {
	args := m.Called(ctx, token)
	var resp *authpb.ValidateTokenResponse
	if val := args.Get(0); val != nil {
		resp = val.(*authpb.ValidateTokenResponse)
	}
	return resp, args.Error(1)
}

// MockContactRepository mocks ContactRepository behavior for handlers and services.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateInvite(ctx context.Context, fromUserID, toUserID int64) (*models.Invite, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	var invite *models.Invite
	if val := args.Get(0); val != nil {
		invite = val.(*models.Invite)
	}
	return invite, args.Error(1)
}

func (m *MockContactRepository) GetPendingInvites(ctx context.Context, userID int64) ([]models.Invite, error) {
	args := m.Called(ctx, userID)
	var invites []models.Invite
	if val := args.Get(0); val != nil {
		invites = val.([]models.Invite)
	}
	return invites, args.Error(1)
}

func (m *MockContactRepository) AcceptInvite(ctx context.Context, inviteID, userID int64) error {
	args := m.Called(ctx, inviteID, userID)
	return args.Error(0)
}

func (m *MockContactRepository) RejectInvite(ctx context.Context, inviteID, userID int64) error {
	args := m.Called(ctx, inviteID, userID)
	return args.Error(0)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	var contacts []int64
	if val := args.Get(0); val != nil {
		contacts = val.([]int64)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) HasPendingInvite(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) AreContacts(ctx context.Context, userID, otherID int64) (bool, error) {
	args := m.Called(ctx, userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) RemoveContact(ctx context.Context, userID, contactID int64) error {
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}

// MockMessageRepository mocks MessageRepository behavior for handlers.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Append(ctx context.Context, fromUserID, toUserID int64, body string) (*models.Message, error) {
	args := m.Called(ctx, fromUserID, toUserID, body)
	var msg *models.Message
	if val := args.Get(0); val != nil {
		msg = val.(*models.Message)
	}
	return msg, args.Error(1)
}

func (m *MockMessageRepository) GetConversation(ctx context.Context, userAID, userBID int64) ([]models.ConversationMessage, error) {
	args := m.Called(ctx, userAID, userBID)
	var msgs []models.ConversationMessage
	if val := args.Get(0); val != nil {
		msgs = val.([]models.ConversationMessage)
	}
	return msgs, args.Error(1)
}

func (m *MockMessageRepository) GetOutboundLog(ctx context.Context, fromUserID, toUserID int64) ([]models.Message, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	var msgs []models.Message
	if val := args.Get(0); val != nil {
		msgs = val.([]models.Message)
	}
	return msgs, args.Error(1)
}

// MockUserRepository mocks the directory lookups backed by the users table.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	var user *models.User
	if val := args.Get(0); val != nil {
		user = val.(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListCandidates(ctx context.Context, userID int64, limit int) ([]models.User, error) {
	args := m.Called(ctx, userID, limit)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

// MockPublisher mocks RabbitMQ publisher behavior for telemetry.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Compile-time assertions
var _ repositories.ContactRepository = (*MockContactRepository)(nil)
var _ repositories.MessageRepository = (*MockMessageRepository)(nil)
var _ repositories.UserRepository = (*MockUserRepository)(nil)
var _ rabbitmq.Publisher = (*MockPublisher)(nil)
