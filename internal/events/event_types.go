package events

import (
	"time"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded  EventType = "login_succeeded"
	EventCommentCreated  EventType = "comment_created"
	EventFeedbackCreated EventType = "feedback_created"
	EventMessageSent     EventType = "message_sent"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role domain.Role `json:"role"`
	ID   int64       `json:"id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CommentCreatedPayload payload.
type CommentCreatedPayload struct {
	CommentID int64  `json:"comment_id"`
	PostID    int64  `json:"post_id"`
	Preview   string `json:"preview"`
}

// FeedbackCreatedPayload payload.
type FeedbackCreatedPayload struct {
	FeedbackID int64  `json:"feedback_id"`
	Title      string `json:"title"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	MessageID int64  `json:"message_id"`
	StudentID int64  `json:"student_id"`
	Subject   string `json:"subject"`
}
