package models

// ReviewDecision captures a human keep/remove/maybe choice for one photo.
// No writer exists yet; the schema is migrated for forward compatibility.
type ReviewDecision struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoID  uint   `gorm:"not null;uniqueIndex" json:"photo_id"`
	Decision string `gorm:"size:20;not null;index" json:"decision"` // keep, remove, maybe

	Confidence *float64 `gorm:"" json:"confidence,omitempty"` // Nullable

	SessionID  *string `gorm:"size:50;index" json:"session_id,omitempty"` // Nullable
	ReviewerID *string `gorm:"size:50" json:"reviewer_id,omitempty"`      // Nullable

	ReviewTimeSeconds *int    `gorm:"" json:"review_time_seconds,omitempty"` // Nullable
	Notes             *string `gorm:"" json:"notes,omitempty"`               // Nullable

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (ReviewDecision) TableName() string {
	return "review_decisions"
}
