package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User is an account holder. Every transaction and budget belongs to
// exactly one user.
type User struct {
	DefaultModel
	Name     string
	Email    string `gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

var (
	ErrEmailNotUnique = errors.New("an account with this email address already exists")
	ErrEmailEmpty     = errors.New("the email address must be set")
)

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Email == "" {
		return ErrEmailEmpty
	}

	return nil
}
