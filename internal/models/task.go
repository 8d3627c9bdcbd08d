package models

import (
	"time"

	"gorm.io/gorm"
)

// Task is a concrete, actionable study item tied to a topic.
type Task struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	TopicID uint   `gorm:"not null;index" json:"topic_id"`
	Title   string `gorm:"not null" json:"title"`

	// DueDate is optional; the planner works without deadlines. Stored as
	// a calendar date at UTC midnight.
	DueDate *time.Time `json:"due_date"`

	Priority int    `gorm:"default:2" json:"priority"` // 1..3, higher = more important
	Status   Status `gorm:"default:TODO" json:"status"`
	Notes    string `json:"notes"`
}
