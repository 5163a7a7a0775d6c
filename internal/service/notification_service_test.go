package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Favour-325/campusly-myjfn2/internal/config"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
	"github.com/Favour-325/campusly-myjfn2/internal/events"
)

func TestNotificationServiceHandlesEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		WebhookURL: "https://hooks.example.com/campusly",
	}).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:      "evt-1",
		Type:    events.EventFeedbackCreated,
		Actor:   events.Actor{Role: domain.RoleStudent, ID: 4},
		Payload: events.FeedbackCreatedPayload{FeedbackID: 9, Title: "wifi"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("FeedbackCreated").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
	// no sender configured
	assert.Zero(t, logs.FilterMessage("sendEmailNotificationStub").Len())

	entry := logs.FilterMessage("FeedbackCreated").All()[0]
	assert.Equal(t, int64(4), entry.ContextMap()["actor_id"])
}

func TestNotificationServiceEmailsMessageRecipient(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{
		EmailFrom: "registrar@uni.edu",
	}).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:      "evt-2",
		Type:    events.EventMessageSent,
		Actor:   events.Actor{Role: domain.RoleAdmin, ID: 1},
		Payload: events.MessageSentPayload{MessageID: 3, StudentID: 11, Subject: "Fees"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("MessageSent").Len())
	assert.Equal(t, 1, logs.FilterMessage("sendEmailNotificationStub").Len())
	assert.Zero(t, logs.FilterMessage("sendWebhookNotificationStub").Len())
}
