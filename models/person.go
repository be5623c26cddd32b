package models

// Person represents a named identity that faces can be assigned to.
// It corresponds to the 'people' table.
type Person struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DisplayName *string `gorm:"size:100" json:"display_name,omitempty"` // Nullable
	FaceCount   int     `gorm:"not null;default:0;index" json:"face_count"`
	Description *string `gorm:"" json:"description,omitempty"` // Nullable

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp

	// Relationships
	Faces []Face `gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL" json:"faces,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}
