package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chat-service/internal/mocks"
	"chat-service/internal/models"
	"chat-service/internal/services"
	authpb "chat-service/proto/auth"
)

func setupUserRouter(handler *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	})
	r.GET("/", handler.GetMe)
	r.GET("/contacts/available", handler.ListAvailable)
	r.DELETE("/contacts/:contactID", handler.RemoveContact)
	return r
}

func TestGetMe_ResolvesContactsAndInvites(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	mockUsers := new(mocks.MockUserRepository)
	handler := NewUserHandler(services.NewUserService(mockAuth), mockUsers, mockContacts, 50)
	router := setupUserRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(1)).Return(&authpb.GetUserResponse{Id: 1, DisplayName: "alice"}, nil).Once()
	mockContacts.On("ListContacts", mock.Anything, int64(1)).Return([]int64{2}, nil).Once()
	mockContacts.On("GetPendingInvites", mock.Anything, int64(1)).Return([]models.Invite{{ID: 7, FromUserID: 3, ToUserID: 1}}, nil).Once()
	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockAuth.On("GetUser", mock.Anything, int64(3)).Return(&authpb.GetUserResponse{Id: 3, DisplayName: "carol"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, float64(1), resp["_id"])
	require.Equal(t, "alice", resp["display_name"])

	contacts := resp["contacts"].([]any)
	require.Len(t, contacts, 1)
	contactEntry := contacts[0].(map[string]any)
	require.Equal(t, float64(2), contactEntry["_id"])
	require.Equal(t, "bob", contactEntry["display_name"])

	invites := resp["invites"].([]any)
	require.Len(t, invites, 1)
	inviteEntry := invites[0].(map[string]any)
	require.Equal(t, float64(7), inviteEntry["id"])
	sender := inviteEntry["from"].(map[string]any)
	require.Equal(t, "carol", sender["display_name"])

	mockAuth.AssertExpectations(t)
	mockContacts.AssertExpectations(t)
}

func TestGetMe_AuthGatewayError(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	handler := NewUserHandler(services.NewUserService(mockAuth), new(mocks.MockUserRepository), new(mocks.MockContactRepository), 50)
	router := setupUserRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(1)).Return((*authpb.GetUserResponse)(nil), assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	mockAuth.AssertExpectations(t)
}

func TestListAvailable_ReturnsCandidates(t *testing.T) {
	mockUsers := new(mocks.MockUserRepository)
	handler := NewUserHandler(services.NewUserService(new(mocks.MockAuthClient)), mockUsers, new(mocks.MockContactRepository), 50)
	router := setupUserRouter(handler)

	mockUsers.On("ListCandidates", mock.Anything, int64(1), 50).Return([]models.User{
		{ID: 4, DisplayName: "dave"},
		{ID: 5, DisplayName: "erin"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/contacts/available", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	require.Equal(t, "dave", resp[0].DisplayName)

	mockUsers.AssertExpectations(t)
}

func TestRemoveContact_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewUserHandler(services.NewUserService(mockAuth), new(mocks.MockUserRepository), mockContacts, 50)
	router := setupUserRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockContacts.On("AreContacts", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
	mockContacts.On("RemoveContact", mock.Anything, int64(1), int64(2)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/contacts/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	mockContacts.AssertExpectations(t)
}

func TestRemoveContact_NotContactsReturnsNotFound(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewUserHandler(services.NewUserService(mockAuth), new(mocks.MockUserRepository), mockContacts, 50)
	router := setupUserRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockContacts.On("AreContacts", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/contacts/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	mockContacts.AssertNotCalled(t, "RemoveContact", mock.Anything, mock.Anything, mock.Anything)
}
