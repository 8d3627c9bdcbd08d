package models

import "time"

// Owner is the account every record is scoped to. The CLI resolves one by
// name (default "local") and threads its ID through every store call.
type Owner struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
