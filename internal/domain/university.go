package domain

import "time"

// University represents a tenant institution.
type University struct {
	ID        int64
	Name      string
	Location  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
