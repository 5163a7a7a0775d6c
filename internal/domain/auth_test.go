package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, role.Valid(), role)
	}
	assert.False(t, Role("moderator").Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("Student").Valid())
}

func TestRoleSetContains(t *testing.T) {
	set := NewRoleSet(RoleAdmin, RoleStudent)

	assert.True(t, set.Contains(RoleAdmin))
	assert.True(t, set.Contains(RoleStudent))
	assert.False(t, set.Contains(RoleProfessor))
	assert.False(t, NewRoleSet().Contains(RoleAdmin))
}

func TestIdentityVariantsReportTheirRole(t *testing.T) {
	identities := []Identity{
		&Student{ID: 1, Email: "s@uni.edu"},
		&Professor{ID: 2, Email: "p@uni.edu"},
		&Admin{ID: 3, Email: "a@uni.edu"},
	}

	assert.Equal(t, RoleStudent, identities[0].IdentityRole())
	assert.Equal(t, RoleProfessor, identities[1].IdentityRole())
	assert.Equal(t, RoleAdmin, identities[2].IdentityRole())
	assert.Equal(t, int64(2), identities[1].IdentityID())
	assert.Equal(t, "a@uni.edu", identities[2].IdentityEmail())
}

func TestReactionKindValid(t *testing.T) {
	for _, kind := range []ReactionKind{ReactionLike, ReactionCelebrate, ReactionSad} {
		assert.True(t, kind.Valid(), kind)
	}
	assert.False(t, ReactionKind("angry").Valid())
	assert.False(t, ReactionKind("").Valid())
}
