package model

import (
	"net/mail"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

// UserRole names what a user account is allowed to act as.
type UserRole string

const (
	RoleUser           UserRole = "user"
	RoleAdmin          UserRole = "admin"
	RoleBusinessOwner  UserRole = "business_owner"
	RoleEventOrganizer UserRole = "event_organizer"
	RoleModerator      UserRole = "moderator"
)

var userRoles = map[UserRole]bool{
	RoleUser:           true,
	RoleAdmin:          true,
	RoleBusinessOwner:  true,
	RoleEventOrganizer: true,
	RoleModerator:      true,
}

// Valid reports whether r is a known user role.
func (r UserRole) Valid() bool {
	return userRoles[r]
}

// User is a registered account. The password hash is never serialized.
type User struct {
	Base
	Email          string   `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	HashedPassword string   `json:"-" gorm:"type:varchar(255);not null"`
	FullName       string   `json:"full_name" gorm:"type:varchar(255);not null"`
	IsActive       bool     `json:"is_active"`
	Role           UserRole `json:"role" gorm:"type:varchar(30);not null"`
}

// Validate checks the value-domain constraints of a persisted user.
func (u *User) Validate() error {
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperr.Validationf("invalid email address: %s", u.Email)
	}
	if !u.Role.Valid() {
		return apperr.Validationf("invalid user role: %s", u.Role)
	}
	return nil
}

// UserCreate is the registration payload. The plaintext password is hashed
// by the handler before the model is persisted.
type UserCreate struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role"`
}

// Validate checks required fields and value domains.
func (in *UserCreate) Validate() error {
	if in.Email == "" {
		return apperr.Validationf("email is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperr.Validationf("invalid email address: %s", in.Email)
	}
	if in.Password == "" {
		return apperr.Validationf("password is required")
	}
	if in.FullName == "" {
		return apperr.Validationf("full_name is required")
	}
	if in.Role != "" && !in.Role.Valid() {
		return apperr.Validationf("invalid user role: %s", in.Role)
	}
	return nil
}

// ToModel maps the input to a new active user carrying the supplied hash.
func (in *UserCreate) ToModel(hashedPassword string) *User {
	role := in.Role
	if role == "" {
		role = RoleUser
	}
	return &User{
		Email:          in.Email,
		HashedPassword: hashedPassword,
		FullName:       in.FullName,
		IsActive:       true,
		Role:           role,
	}
}

// UserUpdate is a partial-update payload; nil fields mean "leave unchanged".
// Only the display name and the role are mutable; email is fixed at
// registration.
type UserUpdate struct {
	FullName *string   `json:"full_name"`
	Role     *UserRole `json:"role"`
}

// Apply copies the supplied fields onto u.
func (in *UserUpdate) Apply(u *User) {
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
}
