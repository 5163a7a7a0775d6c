package domain

import "time"

// Feedback is a student's message to administrators. Creation is rate limited.
type Feedback struct {
	ID        int64
	StudentID int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
