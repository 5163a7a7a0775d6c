package dto

import "time"

// PersonRequest payload for professor and admin create/update.
type PersonRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	UniversityID *int64 `json:"university_id"`
}

// StudentRequest payload for student registration and update.
type StudentRequest struct {
	PersonRequest
	DepartmentID *int64 `json:"department_id"`
	LevelID      *int64 `json:"level_id"`
}

// PersonResponse is the public view of a professor or admin. Password hashes never leave the service.
type PersonResponse struct {
	ID           int64     `json:"id"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	UniversityID *int64    `json:"university_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentResponse is the public view of a student.
type StudentResponse struct {
	PersonResponse
	DepartmentID *int64 `json:"department_id"`
	LevelID      *int64 `json:"level_id"`
}
