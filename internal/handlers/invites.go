package handlers

import (
	"context"
	"database/sql"
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-service/internal/metrics"
	"chat-service/internal/repositories"
	"chat-service/internal/services"
	"chat-service/internal/telemetry"
)

type InviteHandler struct {
	contacts repositories.ContactRepository
	users    *services.UserService
	audit    *telemetry.AuditEmitter
}

func NewInviteHandler(contacts repositories.ContactRepository, users *services.UserService, audit *telemetry.AuditEmitter) *InviteHandler {
	return &InviteHandler{contacts: contacts, users: users, audit: audit}
}

func (h *InviteHandler) Send(c *gin.Context) {
	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)

	toUserID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	if userID == nil {
		h.emitAudit(c.Request.Context(), "ERROR", "internal error", requestID, nil)
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	fromUserID := *userID

	if toUserID == fromUserID {
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "cannot send invite to yourself"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.users.GetUserByID(ctx, toUserID); err != nil {
		h.emitAudit(ctx, "ERROR", "invite target not found", requestID, userID)
		metrics.IncInviteRequest(metrics.StatusFailed)
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(nethttp.StatusNotFound, gin.H{"error": "invite target not found"})
			return
		}
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to resolve invite target"})
		return
	}

	exists, err := h.contacts.HasPendingInvite(ctx, fromUserID, toUserID)
	if err != nil {
		h.emitAudit(ctx, "ERROR", "internal error", requestID, userID)
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to check invites"})
		return
	}
	if exists {
		h.emitAudit(ctx, "ERROR", "pending invite already exists", requestID, userID)
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusConflict, gin.H{"error": "pending invite already exists"})
		return
	}

	contacts, err := h.contacts.AreContacts(ctx, fromUserID, toUserID)
	if err != nil {
		h.emitAudit(ctx, "ERROR", "internal error", requestID, userID)
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to check contact edge"})
		return
	}
	if contacts {
		h.emitAudit(ctx, "ERROR", "users are already contacts", requestID, userID)
		metrics.IncInviteRequest(metrics.StatusFailed)
		c.JSON(nethttp.StatusConflict, gin.H{"error": "users are already contacts"})
		return
	}

	if _, err := h.contacts.CreateInvite(ctx, fromUserID, toUserID); err != nil {
		h.emitAudit(ctx, "ERROR", "internal error", requestID, userID)
		metrics.IncInviteRequest(metrics.StatusFailed)
		if errors.Is(err, repositories.ErrDuplicateInvite) {
			c.JSON(nethttp.StatusConflict, gin.H{"error": "pending invite already exists"})
			return
		}
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to create invite"})
		return
	}

	h.emitAudit(ctx, "INFO", "Invite sent to '"+strconv.FormatInt(toUserID, 10)+"'", requestID, userID)
	metrics.IncInviteRequest(metrics.StatusSuccess)
	c.JSON(nethttp.StatusCreated, gin.H{"success": true})
}

func (h *InviteHandler) ListPending(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	invites, err := h.contacts.GetPendingInvites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load invites"})
		return
	}

	resp := make([]gin.H, 0, len(invites))
	for _, inv := range invites {
		sender, err := h.users.GetUserByID(c.Request.Context(), inv.FromUserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(nethttp.StatusNotFound, gin.H{"error": "sender not found"})
				return
			}
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch sender info"})
			return
		}
		resp = append(resp, gin.H{
			"id":         inv.ID,
			"from":       sender,
			"created_at": inv.CreatedAt,
		})
	}

	c.JSON(nethttp.StatusOK, resp)
}

func (h *InviteHandler) Accept(c *gin.Context) {
	h.handleDecision(c, h.contacts.AcceptInvite, "accepted", "accept", metrics.IncInviteAccept)
}

func (h *InviteHandler) Reject(c *gin.Context) {
	h.handleDecision(c, h.contacts.RejectInvite, "rejected", "reject", metrics.IncInviteReject)
}

func (h *InviteHandler) handleDecision(c *gin.Context, action func(ctx context.Context, inviteID, userID int64) error, status, verb string, inc func(string)) {
	inviteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		inc(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid invite id"})
		return
	}

	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)
	if userID == nil {
		h.emitAudit(c.Request.Context(), "ERROR", "internal error", requestID, nil)
		inc(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	if err := action(ctx, inviteID, *userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.emitAudit(ctx, "ERROR", "invite not found", requestID, userID)
			inc(metrics.StatusFailed)
			c.JSON(nethttp.StatusNotFound, gin.H{"error": "invite not found"})
			return
		}
		if errors.Is(err, repositories.ErrInviteForbidden) {
			h.emitAudit(ctx, "ERROR", "not allowed to "+verb+" this invite", requestID, userID)
			inc(metrics.StatusFailed)
			c.JSON(nethttp.StatusForbidden, gin.H{"error": "not allowed to " + verb + " this invite"})
			return
		}
		h.emitAudit(ctx, "ERROR", "internal error", requestID, userID)
		inc(metrics.StatusFailed)
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to update invite"})
		return
	}

	h.emitAudit(ctx, "INFO", "Invite "+status, requestID, userID)
	inc(metrics.StatusSuccess)
	c.JSON(nethttp.StatusOK, gin.H{"success": true})
}

func (h *InviteHandler) emitAudit(ctx context.Context, level, text, requestID string, userID *int64) {
	if h.audit == nil {
		return
	}
	h.audit.EmitAudit(ctx, level, text, requestID, userID)
}
