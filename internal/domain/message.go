package domain

import "time"

// Message is a note from an administrator to a single student.
type Message struct {
	ID        int64
	AdminID   *int64
	StudentID int64
	Subject   string
	Content   string
	IsRead    bool
	CreatedAt time.Time
}
