package handlers

import (
	"context"
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-service/internal/metrics"
	"chat-service/internal/repositories"
	"chat-service/internal/services"
	"chat-service/internal/telemetry"
)

type ChatHandler struct {
	messages repositories.MessageRepository
	users    *services.UserService
	audit    *telemetry.AuditEmitter
}

func NewChatHandler(messages repositories.MessageRepository, users *services.UserService, audit *telemetry.AuditEmitter) *ChatHandler {
	return &ChatHandler{messages: messages, users: users, audit: audit}
}

type postMessageBody struct {
	Message string `json:"message" binding:"required"`
}

// GetConversation serves the full bidirectional history with contactID,
// ascending by timestamp.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	contactID, err := strconv.ParseInt(c.Param("contactID"), 10, 64)
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	conversation, err := h.messages.GetConversation(c.Request.Context(), userID, contactID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}

	c.JSON(nethttp.StatusOK, conversation)
}

// GetOutboundLog serves only the caller's messages to contactID, newest
// first. Retained alongside the bidirectional view because both call
// patterns exist upstream.
func (h *ChatHandler) GetOutboundLog(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	contactID, err := strconv.ParseInt(c.Param("contactID"), 10, 64)
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	log, err := h.messages.GetOutboundLog(c.Request.Context(), userID, contactID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	c.JSON(nethttp.StatusOK, log)
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	requestID := requestIDFromHeader(c)
	userID := userIDFromContext(c)

	contactID, err := strconv.ParseInt(c.Param("contactID"), 10, 64)
	if err != nil {
		metrics.IncMessageSent(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	var body postMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		metrics.IncMessageSent(metrics.StatusFailed)
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if userID == nil {
		metrics.IncMessageSent(metrics.StatusFailed)
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// Sending is not gated on contact status; only the recipient must exist.
	ctx := c.Request.Context()
	if _, err := h.users.GetUserByID(ctx, contactID); err != nil {
		metrics.IncMessageSent(metrics.StatusFailed)
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(nethttp.StatusNotFound, gin.H{"error": "recipient not found"})
			return
		}
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to resolve recipient"})
		return
	}

	if _, err := h.messages.Append(ctx, *userID, contactID, body.Message); err != nil {
		metrics.IncMessageSent(metrics.StatusFailed)
		if errors.Is(err, repositories.ErrEmptyMessage) {
			c.JSON(nethttp.StatusBadRequest, gin.H{"error": "message is empty"})
			return
		}
		h.emitAudit(ctx, "ERROR", "internal error", requestID, userID)
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}

	h.emitAudit(ctx, "INFO", "Message sent to '"+strconv.FormatInt(contactID, 10)+"'", requestID, userID)
	metrics.IncMessageSent(metrics.StatusSuccess)
	c.JSON(nethttp.StatusOK, gin.H{"success": true})
}

func (h *ChatHandler) emitAudit(ctx context.Context, level, text, requestID string, userID *int64) {
	if h.audit == nil {
		return
	}
	h.audit.EmitAudit(ctx, level, text, requestID, userID)
}
