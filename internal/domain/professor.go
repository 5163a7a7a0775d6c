package domain

import "time"

// Professor is the identity variant for teaching staff.
type Professor struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	UniversityID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Professor) IdentityID() int64     { return p.ID }
func (p *Professor) IdentityEmail() string { return p.Email }
func (p *Professor) IdentityRole() Role    { return RoleProfessor }
func (p *Professor) identity()             {}
