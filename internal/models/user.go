// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered author on the Inkwell platform.
// The Password field holds a bcrypt hash and is never serialized.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"not null" json:"firstName"`
	LastName  string         `gorm:"not null" json:"lastName"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Blogs     []Blog         `gorm:"foreignKey:UserID" json:"blogs,omitempty"`
}

// Sanitized returns a copy safe to embed in responses. The password hash is
// already excluded from JSON via the struct tag; this also drops the blog
// back-references so nested author views stay small.
func (u User) Sanitized() User {
	u.Password = ""
	u.Blogs = nil
	return u
}
