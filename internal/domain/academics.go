package domain

import "time"

// Department groups students within a university.
type Department struct {
	ID           int64
	Name         string
	UniversityID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Level is a year of study, such as "100" or "Final year".
type Level struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
