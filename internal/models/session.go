package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a timed focus block. Either topic or task may be set (or
// both, or neither). When the referenced topic or task is deleted the
// reference is cleared but the session row and its minutes survive, so
// historical analytics stay stable.
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID uint  `gorm:"not null;index" json:"owner_id"`
	TopicID *uint `json:"topic_id"`
	TaskID  *uint `json:"task_id"`

	StartedAt time.Time  `gorm:"not null" json:"started_at"` // immutable after creation
	EndedAt   *time.Time `json:"ended_at"`                   // nil while running
	Minutes   int        `gorm:"default:0" json:"minutes"`   // set once, when stopped
	Notes     string     `json:"notes"`
}

// Running reports whether the session has not been stopped yet.
func (s *Session) Running() bool {
	return s.EndedAt == nil
}
