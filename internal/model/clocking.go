package model

import (
	"time"

	"github.com/google/uuid"
)

// Clocking is one work session of an employee. An open session has a null
// EndAt; at most one open row should exist per user. TotalHour keeps the
// original column name but holds elapsed whole seconds, derived on the server
// from StartAt/EndAt rather than trusted from the client.
type Clocking struct {
	BaseModel
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Date      time.Time  `gorm:"not null" json:"date"`
	StartAt   time.Time  `gorm:"not null" json:"start"`
	EndAt     *time.Time `json:"end"`
	TotalHour *int       `gorm:"column:total_hour" json:"total_hour"`
}

// IsOpen reports whether this session is still running.
func (c *Clocking) IsOpen() bool {
	return c.EndAt == nil
}
