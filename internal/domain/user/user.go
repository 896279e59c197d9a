package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sitelog/internal/shared/authorization"
)

// User is an account that can authenticate and perform actions according
// to its role.
type User struct {
	id           string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	role         authorization.UserRole
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active user with the given role. passwordHash must
// already be hashed; the domain never sees plaintext credentials.
func NewUser(email, passwordHash, firstName, lastName string, role authorization.UserRole) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.NewString(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id, email, passwordHash, firstName, lastName string,
	role authorization.UserRole,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() string                   { return u.id }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) FirstName() string            { return u.firstName }
func (u *User) LastName() string             { return u.lastName }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) LastLogin() *time.Time        { return u.lastLogin }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// FullName returns "firstName lastName" trimmed of extra spaces.
func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// RecordLogin stamps the last successful login time.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.lastLogin = &now
	u.updatedAt = now
}
