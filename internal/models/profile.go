package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is one saved search result with user-added tags.
// The unique index on Link enforces the one-save-per-link rule at the store
// level, so a concurrent duplicate save loses on insert rather than racing
// past the existence check.
type Profile struct {
	ID        string                      `gorm:"primaryKey;type:text" json:"id"`
	Title     string                      `gorm:"type:text;not null" json:"title"`
	Link      string                      `gorm:"type:text;uniqueIndex;not null" json:"link"`
	Snippet   string                      `gorm:"type:text;not null" json:"snippet"`
	Thumbnail *string                     `gorm:"type:text" json:"thumbnail"`
	SavedAt   time.Time                   `gorm:"type:timestamptz;not null;index" json:"saved_at"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"tags"`
}

func (Profile) TableName() string {
	return "profiles"
}

// TagList builds the jsonb tag column value from a plain slice; nil becomes
// an empty array so the stored document never carries a JSON null.
func TagList(tags []string) datatypes.JSONSlice[string] {
	if tags == nil {
		tags = []string{}
	}
	return datatypes.NewJSONSlice(tags)
}
