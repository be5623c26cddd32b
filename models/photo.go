package models

// Photo represents one unique image file tracked by the organiser.
// It corresponds to the 'photos' table.
type Photo struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FilePath string `gorm:"uniqueIndex;not null" json:"file_path"`
	FileHash string `gorm:"size:64;not null;index" json:"file_hash"`

	Width        *int    `gorm:"" json:"width,omitempty"`         // Nullable
	Height       *int    `gorm:"" json:"height,omitempty"`        // Nullable
	FileSize     *int64  `gorm:"" json:"file_size,omitempty"`     // Nullable, bytes
	CreatedDate  *int64  `gorm:"" json:"created_date,omitempty"`  // Nullable, Unix timestamp (EXIF capture time)
	ModifiedDate *int64  `gorm:"" json:"modified_date,omitempty"` // Nullable, Unix timestamp (file mtime)
	MimeType     *string `gorm:"size:50" json:"mime_type,omitempty"`

	// face detection summary
	HasFaces  bool `gorm:"not null;default:false;index" json:"has_faces"`
	FaceCount int  `gorm:"not null;default:0" json:"face_count"`

	// content classification summary
	HasText      bool    `gorm:"not null;default:false" json:"has_text"`
	TextContent  *string `gorm:"" json:"text_content,omitempty"`
	IsScreenshot bool    `gorm:"not null;default:false" json:"is_screenshot"`
	ContentType  string  `gorm:"size:20;not null;default:unknown;index" json:"content_type"`

	ProcessingStatus string `gorm:"size:20;not null;default:pending;index" json:"processing_status"`

	ThumbnailPath *string `gorm:"" json:"thumbnail_path,omitempty"` // Nullable

	CreatedAt   int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt   int64  `gorm:"not null" json:"updated_at"` // Unix timestamp
	ProcessedAt *int64 `gorm:"" json:"processed_at,omitempty"`

	// Relationships
	Faces          []Face          `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE" json:"faces,omitempty"`
	ProcessingLogs []ProcessingLog `gorm:"foreignKey:PhotoID" json:"processing_logs,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Photo) TableName() string {
	return "photos"
}

// AspectRatio returns width/height, or 0 when dimensions are unknown.
func (p *Photo) AspectRatio() float64 {
	if p.Width == nil || p.Height == nil || *p.Height == 0 {
		return 0
	}
	return float64(*p.Width) / float64(*p.Height)
}
