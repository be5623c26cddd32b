package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"photo-organiser/models"
)

// ProcessingLogRepository handles the append-only processing audit trail.
// There are deliberately no update or delete methods.
type ProcessingLogRepository struct {
	DB *gorm.DB
}

// NewProcessingLogRepository creates a new instance of ProcessingLogRepository
func NewProcessingLogRepository(db *gorm.DB) *ProcessingLogRepository {
	return &ProcessingLogRepository{DB: db}
}

// Create appends one audit record
func (r *ProcessingLogRepository) Create(entry *models.ProcessingLog) error {
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	if err := r.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create processing log for operation %s: %w", entry.Operation, err)
	}
	return nil
}

// ListByPhotoID retrieves all log entries for a photo, oldest first
func (r *ProcessingLogRepository) ListByPhotoID(photoID uint) ([]models.ProcessingLog, error) {
	var entries []models.ProcessingLog
	err := r.DB.Where("photo_id = ?", photoID).Order("id ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list processing logs for photo ID %d: %w", photoID, err)
	}
	return entries, nil
}

// ListByOperation retrieves the most recent log entries for an operation
func (r *ProcessingLogRepository) ListByOperation(operation string, limit int) ([]models.ProcessingLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.ProcessingLog
	err := r.DB.Where("operation = ?", operation).Order("id DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list processing logs for operation %s: %w", operation, err)
	}
	return entries, nil
}
