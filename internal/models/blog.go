// Package models contains data structures for the application's domain models.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Blog lifecycle states. The update path writes whichever status the caller
// chose; there is no enforced draft -> published ordering.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// TagList is an order-preserving set of tags stored as a JSON text column so
// the same model works against Postgres and the sqlite test driver.
type TagList []string

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(t))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(t))
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}
}

// Blog represents an authored post with a two-state draft/publish lifecycle.
// Content is the rich HTML produced by the editor; it is stored as-is.
type Blog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Tags      TagList        `gorm:"type:text;not null" json:"tags"`
	Status    string         `gorm:"not null;default:draft;index" json:"status"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPublished reports whether the blog is visible on the public listing.
func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}
