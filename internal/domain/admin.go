package domain

import "time"

// Admin is the identity variant for university administrators.
type Admin struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	UniversityID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Admin) IdentityID() int64     { return a.ID }
func (a *Admin) IdentityEmail() string { return a.Email }
func (a *Admin) IdentityRole() Role    { return RoleAdmin }
func (a *Admin) identity()             {}
