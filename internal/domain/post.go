package domain

import "time"

// Post is an announcement published to a university feed.
type Post struct {
	ID           int64
	Title        string
	Description  string
	UniversityID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
