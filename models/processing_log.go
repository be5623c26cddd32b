package models

import "encoding/json"

// ProcessingLog is an append-only audit record of one processing attempt.
// Rows are never updated or deleted by normal operation.
type ProcessingLog struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PhotoID   *uint  `gorm:"index" json:"photo_id,omitempty"` // Nullable; failures can predate the photo row
	Operation string `gorm:"size:50;not null;index" json:"operation"`
	Status    string `gorm:"size:20;not null;index" json:"status"` // success or failed

	ProcessingTimeMS *int64   `gorm:"" json:"processing_time_ms,omitempty"` // Nullable
	MemoryUsageMB    *float64 `gorm:"" json:"memory_usage_mb,omitempty"`    // Nullable

	ErrorMessage   *string `gorm:"" json:"error_message,omitempty"`   // Nullable
	ErrorTraceback *string `gorm:"" json:"error_traceback,omitempty"` // Nullable

	MetadataJSON *string `gorm:"" json:"metadata_json,omitempty"` // Nullable, serialized key/value pairs

	CreatedAt int64 `gorm:"not null;index" json:"created_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (ProcessingLog) TableName() string {
	return "processing_logs"
}

// Metadata decodes MetadataJSON; an empty map is returned when unset or invalid.
func (l *ProcessingLog) Metadata() map[string]any {
	if l.MetadataJSON == nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(*l.MetadataJSON), &m); err != nil {
		return map[string]any{}
	}
	return m
}

// SetMetadata serializes m into MetadataJSON.
func (l *ProcessingLog) SetMetadata(m map[string]any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	s := string(b)
	l.MetadataJSON = &s
	return nil
}
