package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// Actor is the authenticated identity handed to endpoint handlers.
type Actor struct {
	Role     domain.Role
	Identity domain.Identity
}

// ID returns the identity's numeric id.
func (a *Actor) ID() int64 {
	return a.Identity.IdentityID()
}

// Student returns the identity as a student, if it is one.
func (a *Actor) Student() (*domain.Student, bool) {
	s, ok := a.Identity.(*domain.Student)
	return s, ok
}

// Professor returns the identity as a professor, if it is one.
func (a *Actor) Professor() (*domain.Professor, bool) {
	p, ok := a.Identity.(*domain.Professor)
	return p, ok
}

// Admin returns the identity as an admin, if it is one.
func (a *Actor) Admin() (*domain.Admin, bool) {
	ad, ok := a.Identity.(*domain.Admin)
	return ad, ok
}

// StudentLookup finds a student by email.
type StudentLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
}

// ProfessorLookup finds a professor by email.
type ProfessorLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.Professor, error)
}

// AdminLookup finds an admin by email.
type AdminLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

// IdentityResolver maps verified claims to a stored identity.
type IdentityResolver struct {
	students   StudentLookup
	professors ProfessorLookup
	admins     AdminLookup
}

// NewIdentityResolver builds a resolver over the per-variant stores.
func NewIdentityResolver(students StudentLookup, professors ProfessorLookup, admins AdminLookup) *IdentityResolver {
	return &IdentityResolver{students: students, professors: professors, admins: admins}
}

// Resolve checks claims.Role against allowed, then loads the identity of that
// variant with the claimed email. The allow-list is evaluated before any lookup.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *Claims, allowed domain.RoleSet) (*Actor, error) {
	if claims == nil {
		return nil, invalidToken(ReasonClaims, nil)
	}
	if !allowed.Contains(claims.Role) {
		return nil, ErrForbidden
	}

	identity, err := r.lookup(ctx, claims.Role, claims.SubjectEmail)
	if err != nil {
		return nil, err
	}
	return &Actor{Role: claims.Role, Identity: identity}, nil
}

func (r *IdentityResolver) lookup(ctx context.Context, role domain.Role, email string) (domain.Identity, error) {
	var (
		identity domain.Identity
		err      error
	)

	switch role {
	case domain.RoleStudent:
		var s *domain.Student
		if s, err = r.students.GetByEmail(ctx, email); err == nil && s != nil {
			identity = s
		}
	case domain.RoleProfessor:
		var p *domain.Professor
		if p, err = r.professors.GetByEmail(ctx, email); err == nil && p != nil {
			identity = p
		}
	case domain.RoleAdmin:
		var a *domain.Admin
		if a, err = r.admins.GetByEmail(ctx, email); err == nil && a != nil {
			identity = a
		}
	default:
		return nil, ErrRoleNotFound
	}

	if err == nil && identity == nil {
		err = pgx.ErrNoRows
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalidToken(ReasonSubjectNotFound, err)
		}
		return nil, err
	}
	return identity, nil
}
