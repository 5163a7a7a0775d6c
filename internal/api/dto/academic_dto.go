package dto

import "time"

// DepartmentRequest payload.
type DepartmentRequest struct {
	Name         string `json:"name"`
	UniversityID *int64 `json:"university_id"`
}

// DepartmentResponse response.
type DepartmentResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	UniversityID *int64    `json:"university_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LevelRequest payload.
type LevelRequest struct {
	Name string `json:"name"`
}

// LevelResponse response.
type LevelResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
