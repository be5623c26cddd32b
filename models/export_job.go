package models

import "encoding/json"

// ExportJob tracks a bulk export operation. No executor exists yet; the
// schema is migrated for forward compatibility.
type ExportJob struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	JobName string `gorm:"size:100;not null" json:"job_name"`

	FilterCriteriaJSON *string `gorm:"" json:"filter_criteria_json,omitempty"` // Nullable, serialized filters
	DestinationPath    string  `gorm:"not null" json:"destination_path"`

	Status          string `gorm:"size:20;not null;default:pending;index" json:"status"`
	TotalPhotos     int    `gorm:"not null;default:0" json:"total_photos"`
	ProcessedPhotos int    `gorm:"not null;default:0" json:"processed_photos"`
	FailedPhotos    int    `gorm:"not null;default:0" json:"failed_photos"`

	StartedAt             *int64 `gorm:"" json:"started_at,omitempty"`   // Nullable, Unix timestamp
	CompletedAt           *int64 `gorm:"" json:"completed_at,omitempty"` // Nullable, Unix timestamp
	ProcessingTimeSeconds *int   `gorm:"" json:"processing_time_seconds,omitempty"`

	FileSizeBytes *int64  `gorm:"" json:"file_size_bytes,omitempty"`  // Nullable
	CreatedBy     *string `gorm:"size:50;index" json:"created_by,omitempty"` // Nullable
	Notes         *string `gorm:"" json:"notes,omitempty"`            // Nullable

	CreatedAt int64 `gorm:"not null;index" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"`       // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (ExportJob) TableName() string {
	return "export_jobs"
}

// FilterCriteria decodes FilterCriteriaJSON; empty map when unset or invalid.
func (j *ExportJob) FilterCriteria() map[string]any {
	if j.FilterCriteriaJSON == nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(*j.FilterCriteriaJSON), &m); err != nil {
		return map[string]any{}
	}
	return m
}

// ProgressPercentage reports processed/total as a percentage.
func (j *ExportJob) ProgressPercentage() float64 {
	if j.TotalPhotos == 0 {
		return 0
	}
	return float64(j.ProcessedPhotos) / float64(j.TotalPhotos) * 100
}
