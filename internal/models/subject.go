package models

import (
	"time"

	"gorm.io/gorm"
)

// Subject is a high-level area of study (e.g. "Mathematics").
type Subject struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Name    string `gorm:"not null" json:"name"`
	Color   string `gorm:"default:#888888" json:"color"` // hex tag for UI output

	Topics []Topic `gorm:"foreignKey:SubjectID" json:"topics,omitempty"`
}

// Topic is a sub-area within a subject (e.g. "Eigenvalues").
type Topic struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID   uint   `gorm:"not null;index" json:"owner_id"`
	SubjectID uint   `gorm:"not null;index" json:"subject_id"`
	Title     string `gorm:"not null" json:"title"`
	Status    Status `gorm:"default:TODO" json:"status"`

	// StruggleLevel is a 0..3 difficulty signal weighted by the blueprint
	// ranking. Not enforced at the schema level.
	StruggleLevel int `gorm:"default:0" json:"struggle_level"`

	Tasks []Task `gorm:"foreignKey:TopicID" json:"tasks,omitempty"`
}
