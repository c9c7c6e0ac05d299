package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     *string // nil for accounts created through an OAuth provider
	Role             Role
	Age              int
	Status           Status
	TwoFactorEnabled bool
	Provider         AuthProvider
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	Age          int
	Provider     AuthProvider
}

type UserRepo interface {
	Create(p CreateUserParams) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByID(id string) (*User, error)
	ExistsByEmail(email string) (bool, error)
	SetTwoFactor(userID string, enabled bool) error
	UpdatePassword(userID string, newHash string) error
	UpdateProfile(userID string, name *string, age *int) error
	SetStatus(userID string, s Status) error
	Delete(id string) error
}
