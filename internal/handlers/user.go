package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"chat-service/internal/repositories"
	"chat-service/internal/services"
)

type UserHandler struct {
	users          *services.UserService
	directory      repositories.UserRepository
	contacts       repositories.ContactRepository
	candidateLimit int
}

func NewUserHandler(users *services.UserService, directory repositories.UserRepository, contacts repositories.ContactRepository, candidateLimit int) *UserHandler {
	return &UserHandler{
		users:          users,
		directory:      directory,
		contacts:       contacts,
		candidateLimit: candidateLimit,
	}
}

// GetMe returns the caller's profile with contacts and pending invites
// resolved to public identities.
func (h *UserHandler) GetMe(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	ctx := c.Request.Context()
	me, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch user"})
		return
	}

	contactIDs, err := h.contacts.ListContacts(ctx, userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load contacts"})
		return
	}

	invites, err := h.contacts.GetPendingInvites(ctx, userID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load invites"})
		return
	}

	contacts := make([]*services.UserDTO, 0, len(contactIDs))
	for _, id := range contactIDs {
		contact, err := h.users.GetUserByID(ctx, id)
		if err != nil {
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch contact info"})
			return
		}
		contacts = append(contacts, contact)
	}

	pendingInvites := make([]gin.H, 0, len(invites))
	for _, inv := range invites {
		sender, err := h.users.GetUserByID(ctx, inv.FromUserID)
		if err != nil {
			c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to fetch sender info"})
			return
		}
		pendingInvites = append(pendingInvites, gin.H{
			"id":         inv.ID,
			"from":       sender,
			"created_at": inv.CreatedAt,
		})
	}

	c.JSON(nethttp.StatusOK, gin.H{
		"_id":          me.ID,
		"display_name": me.DisplayName,
		"contacts":     contacts,
		"invites":      pendingInvites,
	})
}

// ListAvailable returns users the caller can still invite.
func (h *UserHandler) ListAvailable(c *gin.Context) {
	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int64)

	users, err := h.directory.ListCandidates(c.Request.Context(), userID, h.candidateLimit)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	c.JSON(nethttp.StatusOK, users)
}

func (h *UserHandler) RemoveContact(c *gin.Context) {
	contactID, err := parseID(c, "contactID")
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	userID := userIDFromContext(c)
	if userID == nil {
		c.JSON(nethttp.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.users.GetUserByID(ctx, contactID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(nethttp.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		c.JSON(nethttp.StatusBadGateway, gin.H{"error": "failed to resolve contact"})
		return
	}

	areContacts, err := h.contacts.AreContacts(ctx, *userID, contactID)
	if err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to check contact edge"})
		return
	}
	if !areContacts {
		c.JSON(nethttp.StatusNotFound, gin.H{"error": "contact edge not found"})
		return
	}

	if err := h.contacts.RemoveContact(ctx, *userID, contactID); err != nil {
		c.JSON(nethttp.StatusInternalServerError, gin.H{"error": "failed to remove contact"})
		return
	}

	c.Status(nethttp.StatusNoContent)
}
