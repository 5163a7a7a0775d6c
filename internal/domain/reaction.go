package domain

import "time"

// ReactionKind is the emotion a student attaches to a post.
type ReactionKind string

const (
	ReactionLike      ReactionKind = "like"
	ReactionCelebrate ReactionKind = "celebrate"
	ReactionSad       ReactionKind = "sad"
)

// Valid reports whether k is one of the known kinds.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLike, ReactionCelebrate, ReactionSad:
		return true
	}
	return false
}

// Reaction records one student's reaction of one kind on a post.
type Reaction struct {
	ID        int64
	PostID    int64
	StudentID int64
	Kind      ReactionKind
	CreatedAt time.Time
}

// ReactionCount tallies reactions on a post per kind.
type ReactionCount struct {
	PostID    int64
	Like      int
	Celebrate int
	Sad       int
}
