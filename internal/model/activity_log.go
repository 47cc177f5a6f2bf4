package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only audit row. Never updated, never read
// back by the mutation flows themselves.
type ActivityLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"id_user"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action    string     `gorm:"type:text;not null" json:"aksi"`
	CreatedAt time.Time  `json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
