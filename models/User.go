package models

import (
	"gorm.io/gorm"
)

type Role string

const (
	ROLE_STUDENT Role = "STUDENT"
	ROLE_FACULTY Role = "FACULTY"
	ROLE_ADMIN   Role = "ADMIN"
)

// ParseRole maps a stored role string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case ROLE_STUDENT:
		return ROLE_STUDENT, true
	case ROLE_FACULTY:
		return ROLE_FACULTY, true
	case ROLE_ADMIN:
		return ROLE_ADMIN, true
	default:
		return "", false
	}
}

// User is the durable account record. Email is stored lower-cased and is
// unique across the directory. PasswordHash is always set: federated-only
// accounts get a hash of a random UUID that is never used for login.
type User struct {
	gorm.Model
	Name         string
	Email        string `gorm:"uniqueIndex;size:191"`
	PasswordHash string
	Role         Role `gorm:"type:varchar(16)"`
	UploadCount  int
}
