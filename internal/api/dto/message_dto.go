package dto

import "time"

// MessageRequest payload.
type MessageRequest struct {
	StudentID int64  `json:"student_id"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
}

// MessageResponse response.
type MessageResponse struct {
	ID        int64     `json:"id"`
	AdminID   *int64    `json:"admin_id"`
	StudentID int64     `json:"student_id"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionRequest payload.
type ReactionRequest struct {
	PostID int64  `json:"post_id"`
	Kind   string `json:"kind"`
}

// ReactionResponse response.
type ReactionResponse struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	StudentID int64     `json:"student_id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionCountResponse response.
type ReactionCountResponse struct {
	PostID    int64 `json:"post_id"`
	Like      int   `json:"like"`
	Celebrate int   `json:"celebrate"`
	Sad       int   `json:"sad"`
}
