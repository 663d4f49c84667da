package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chat-service/internal/mocks"
)

func TestEmitAuditPublishesEnvelope(t *testing.T) {
	publisher := new(mocks.MockPublisher)
	emitter := NewAuditEmitter(publisher, "chat-service", "test")

	userID := int64(42)
	publisher.On("Publish", mock.Anything, AuditRoutingKey, mock.MatchedBy(func(e Envelope) bool {
		return e.EventType == "audit_log" &&
			e.Service == "chat-service" &&
			e.Environment == "test" &&
			e.RequestID == "req-1" &&
			e.UserID != nil && *e.UserID == userID &&
			e.Payload.Level == "INFO" &&
			e.Payload.Text == "Invite sent to '2'" &&
			e.EventID != "" &&
			e.OccurredAt != ""
	})).Return(nil).Once()

	emitter.EmitAudit(context.Background(), "INFO", "Invite sent to '2'", "req-1", &userID)

	publisher.AssertExpectations(t)
}

func TestEmitAuditSwallowsPublishError(t *testing.T) {
	publisher := new(mocks.MockPublisher)
	emitter := NewAuditEmitter(publisher, "chat-service", "test")

	publisher.On("Publish", mock.Anything, AuditRoutingKey, mock.Anything).Return(assert.AnError).Once()

	require.NotPanics(t, func() {
		emitter.EmitAudit(context.Background(), "ERROR", "internal error", "req-2", nil)
	})
	publisher.AssertExpectations(t)
}

func TestEmitAuditNilEmitter(t *testing.T) {
	var emitter *AuditEmitter

	require.NotPanics(t, func() {
		emitter.EmitAudit(context.Background(), "INFO", "noop", "req-3", nil)
	})
}
