package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"chat-service/internal/mocks"
	"chat-service/internal/models"
	"chat-service/internal/repositories"
	"chat-service/internal/services"
	authpb "chat-service/proto/auth"
)

func setupInvitesRouter(handler *InviteHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	})
	r.GET("/invites", handler.ListPending)
	r.POST("/invites/:id", handler.Send)
	r.POST("/invites/:id/accept", handler.Accept)
	r.POST("/invites/:id/reject", handler.Reject)
	return r
}

func TestSendInvite_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(mockAuth), nil)
	router := setupInvitesRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockContacts.On("HasPendingInvite", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	mockContacts.On("AreContacts", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	mockContacts.On("CreateInvite", mock.Anything, int64(1), int64(2)).Return(&models.Invite{ID: 10, FromUserID: 1, ToUserID: 2}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	mockAuth.AssertExpectations(t)
	mockContacts.AssertExpectations(t)
}

func TestSendInvite_SelfReturnsBadRequest(t *testing.T) {
	handler := NewInviteHandler(new(mocks.MockContactRepository), services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/invites/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendInvite_InvalidIDReturnsBadRequest(t *testing.T) {
	handler := NewInviteHandler(new(mocks.MockContactRepository), services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/invites/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendInvite_TargetNotFound(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	handler := NewInviteHandler(new(mocks.MockContactRepository), services.NewUserService(mockAuth), nil)
	router := setupInvitesRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(99)).Return((*authpb.GetUserResponse)(nil), status.Error(codes.NotFound, "user not found")).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	mockAuth.AssertExpectations(t)
}

func TestSendInvite_PendingInviteConflict(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(mockAuth), nil)
	router := setupInvitesRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockContacts.On("HasPendingInvite", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	mockContacts.AssertNotCalled(t, "CreateInvite", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendInvite_AlreadyContactsConflict(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(mockAuth), nil)
	router := setupInvitesRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockContacts.On("HasPendingInvite", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	mockContacts.On("AreContacts", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	mockContacts.AssertNotCalled(t, "CreateInvite", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendInvite_DuplicateRaceConflict(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(mockAuth), nil)
	router := setupInvitesRouter(handler)

	mockAuth.On("GetUser", mock.Anything, int64(2)).Return(&authpb.GetUserResponse{Id: 2, DisplayName: "bob"}, nil).Once()
	mockContacts.On("HasPendingInvite", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	mockContacts.On("AreContacts", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	mockContacts.On("CreateInvite", mock.Anything, int64(1), int64(2)).Return((*models.Invite)(nil), repositories.ErrDuplicateInvite).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	mockContacts.AssertExpectations(t)
}

func TestListPending_ResolvesSenders(t *testing.T) {
	mockAuth := new(mocks.MockAuthClient)
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(mockAuth), nil)
	router := setupInvitesRouter(handler)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockContacts.On("GetPendingInvites", mock.Anything, int64(1)).Return([]models.Invite{
		{ID: 7, FromUserID: 3, ToUserID: 1, CreatedAt: createdAt},
	}, nil).Once()
	mockAuth.On("GetUser", mock.Anything, int64(3)).Return(&authpb.GetUserResponse{Id: 3, DisplayName: "carol"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/invites", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	require.Equal(t, float64(7), resp[0]["id"])

	sender := resp[0]["from"].(map[string]any)
	require.Equal(t, float64(3), sender["_id"])
	require.Equal(t, "carol", sender["display_name"])

	mockAuth.AssertExpectations(t)
	mockContacts.AssertExpectations(t)
}

func TestAcceptInvite_Success(t *testing.T) {
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	mockContacts.On("AcceptInvite", mock.Anything, int64(7), int64(1)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/7/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockContacts.AssertExpectations(t)
}

func TestAcceptInvite_NotFound(t *testing.T) {
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	mockContacts.On("AcceptInvite", mock.Anything, int64(7), int64(1)).Return(sql.ErrNoRows).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/7/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAcceptInvite_ForbiddenForNonRecipient(t *testing.T) {
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	mockContacts.On("AcceptInvite", mock.Anything, int64(7), int64(1)).Return(repositories.ErrInviteForbidden).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/7/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRejectInvite_Success(t *testing.T) {
	mockContacts := new(mocks.MockContactRepository)
	handler := NewInviteHandler(mockContacts, services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	mockContacts.On("RejectInvite", mock.Anything, int64(7), int64(1)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/invites/7/reject", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockContacts.AssertExpectations(t)
}

func TestRejectInvite_InvalidIDReturnsBadRequest(t *testing.T) {
	handler := NewInviteHandler(new(mocks.MockContactRepository), services.NewUserService(new(mocks.MockAuthClient)), nil)
	router := setupInvitesRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/invites/abc/reject", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
