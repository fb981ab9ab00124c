package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleStudent           = "student"
	RoleLecturer          = "lecturer"
	RolePrincipalLecturer = "principal_lecturer"
	RoleProgramLeader     = "program_leader"
)

// Roles is the closed set of roles a user may hold.
var Roles = []string{RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader}

// DefaultFaculty is assigned when registration omits a faculty.
const DefaultFaculty = "Faculty of Information Communication Technology"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists with this email")
	ErrInvalidRole        = errors.New("invalid role")
	// ErrStoreUnavailable is returned by the mock store for any write; the
	// fallback dataset is read-only.
	ErrStoreUnavailable = errors.New("backing store unavailable")
)

// User models an authenticated actor in the system. PasswordHash never
// crosses the API boundary.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Faculty      string    `json:"faculty,omitempty"`
	Department   string    `json:"department,omitempty"`
	Stream       string    `json:"stream,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the enumerated set.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeEmail lowercases and trims an email so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
