package dto

import "time"

// UniversityRequest payload.
type UniversityRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UniversityResponse response.
type UniversityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostRequest payload.
type PostRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	UniversityID int64  `json:"university_id"`
}

// PostResponse response.
type PostResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	UniversityID int64     `json:"university_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CommentRequest payload.
type CommentRequest struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

// CommentResponse response.
type CommentResponse struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	StudentID int64     `json:"student_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackRequest payload.
type FeedbackRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FeedbackResponse response.
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
