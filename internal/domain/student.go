package domain

import "time"

// Student is the identity variant for enrolled students.
type Student struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	UniversityID *int64
	DepartmentID *int64
	LevelID      *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Student) IdentityID() int64     { return s.ID }
func (s *Student) IdentityEmail() string { return s.Email }
func (s *Student) IdentityRole() Role    { return RoleStudent }
func (s *Student) identity()             {}
