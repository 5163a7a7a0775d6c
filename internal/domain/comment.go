package domain

import "time"

// Comment is a student's reply on a post. Creation is rate limited.
type Comment struct {
	ID        int64
	PostID    int64
	StudentID int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
