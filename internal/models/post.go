// Package models contains data structures for the application's domain models.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MaxPostAttachments caps the number of attachment URLs on a single post.
const MaxPostAttachments = 5

// AttachmentList is an ordered list of public attachment URLs, persisted
// as a JSON text column so the same schema works on Postgres and SQLite.
type AttachmentList []string

// Value implements driver.Valuer.
func (a AttachmentList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *AttachmentList) Scan(src any) error {
	if src == nil {
		*a = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported attachment list source type %T", src)
	}
}

// Post represents a feed entry owned by a single user. A post must carry
// non-empty text or at least one attachment; the service layer enforces this
// before the post reaches the repository.
type Post struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TextContent string         `gorm:"type:text" json:"text_content"`
	Files       AttachmentList `gorm:"type:text" json:"files"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
