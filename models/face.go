package models

// Face represents a detected face region in a photo, optionally linked to a
// person. It corresponds to the 'faces' table.
type Face struct {
	ID       uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoID  uint  `gorm:"not null;index" json:"photo_id"`
	PersonID *uint `gorm:"index" json:"person_id,omitempty"` // Nullable foreign key to people table

	// reference into the external embedding index; this store does not own it
	EmbeddingID string `gorm:"size:100;not null;index" json:"embedding_id"`

	// bounding box
	BboxX      int `gorm:"not null" json:"bbox_x"`
	BboxY      int `gorm:"not null" json:"bbox_y"`
	BboxWidth  int `gorm:"not null" json:"bbox_width"`
	BboxHeight int `gorm:"not null" json:"bbox_height"`

	Confidence float64 `gorm:"not null;index" json:"confidence"`

	// quality metrics
	Sharpness  *float64 `gorm:"" json:"sharpness,omitempty"`  // Nullable
	Brightness *float64 `gorm:"" json:"brightness,omitempty"` // Nullable
	BlurScore  *float64 `gorm:"" json:"blur_score,omitempty"` // Nullable

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"` // Belongs to Person
}

// TableName explicitly sets the table name for GORM.
func (Face) TableName() string {
	return "faces"
}

// Area returns the bounding box area in pixels.
func (f *Face) Area() int {
	return f.BboxWidth * f.BboxHeight
}

// CenterPoint returns the center of the bounding box.
func (f *Face) CenterPoint() (int, int) {
	return f.BboxX + f.BboxWidth/2, f.BboxY + f.BboxHeight/2
}
