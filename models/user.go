package models

import (
	"strings"
)

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:254;not null"`
	FirstName    string `json:"first_name" gorm:"size:150"`
	LastName     string `json:"last_name" gorm:"size:150"`
	PasswordHash string `json:"-" gorm:"not null"`
	WithCreated
	Posts    []Post    `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:AuthorID"`
}

// FullName returns "First Last", falling back to the username when both
// name fields are empty. Value receiver: templates call this on User
// values, which cannot take the address of a pointer receiver.
func (u User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}
