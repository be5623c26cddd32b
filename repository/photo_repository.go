package repository

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"photo-organiser/database"
	"photo-organiser/models"
)

// PhotoRepository handles database operations for Photo entities
type PhotoRepository struct {
	DB *gorm.DB
}

// NewPhotoRepository creates a new instance of PhotoRepository. The db handle
// may be a transaction; all operations then stage inside it.
func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

// Create inserts a new photo record
func (r *PhotoRepository) Create(photo *models.Photo) error {
	now := time.Now().Unix()
	if photo.CreatedAt == 0 {
		photo.CreatedAt = now
	}
	photo.UpdatedAt = now
	photo.FilePath = filepath.ToSlash(photo.FilePath)
	if photo.ContentType == "" {
		photo.ContentType = database.ContentTypeUnknown
	}
	if photo.ProcessingStatus == "" {
		photo.ProcessingStatus = database.StatusPending
	}

	if err := r.DB.Create(photo).Error; err != nil {
		return fmt.Errorf("failed to create photo record for %s: %w", photo.FilePath, err)
	}
	return nil
}

// GetByID retrieves a photo by its numeric identifier
func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.DB.First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get photo by ID %d: %w", id, err)
	}
	return &photo, nil
}

// GetByPath retrieves a photo by its unique file path
func (r *PhotoRepository) GetByPath(filePath string) (*models.Photo, error) {
	cleanPath := filepath.ToSlash(filePath)
	var photo models.Photo
	err := r.DB.Where("file_path = ?", cleanPath).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get photo by path %s: %w", cleanPath, err)
	}
	return &photo, nil
}

// Update persists all fields of the given photo record
func (r *PhotoRepository) Update(photo *models.Photo) error {
	photo.UpdatedAt = time.Now().Unix()
	if err := r.DB.Save(photo).Error; err != nil {
		return fmt.Errorf("failed to update photo ID %d: %w", photo.ID, err)
	}
	return nil
}

// SetStatus updates only the processing status of a photo
func (r *PhotoRepository) SetStatus(photoID uint, status string) error {
	updates := map[string]interface{}{
		"processing_status": status,
		"updated_at":        time.Now().Unix(),
	}
	result := r.DB.Model(&models.Photo{}).Where("id = ?", photoID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to set status %s for photo ID %d: %w", status, photoID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a photo and its dependent rows. The cascade is explicit:
// faces and processing logs for the photo are deleted in the same transaction.
func (r *PhotoRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", id).Delete(&models.Face{}).Error; err != nil {
			return fmt.Errorf("failed to delete faces for photo ID %d: %w", id, err)
		}
		if err := tx.Where("photo_id = ?", id).Delete(&models.ProcessingLog{}).Error; err != nil {
			return fmt.Errorf("failed to delete processing logs for photo ID %d: %w", id, err)
		}
		result := tx.Delete(&models.Photo{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete photo ID %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// PhotoStats summarizes the processing state of the whole library
type PhotoStats struct {
	TotalPhotos             int64            `json:"total_photos"`
	ProcessedPhotos         int64            `json:"processed_photos"`
	FailedPhotos            int64            `json:"failed_photos"`
	PendingPhotos           int64            `json:"pending_photos"`
	PhotosWithFaces         int64            `json:"photos_with_faces"`
	ContentTypeDistribution map[string]int64 `json:"content_type_distribution"`
	CompletionRate          float64          `json:"processing_completion_rate"`
}

// Stats aggregates library-wide counters for the status command and API
func (r *PhotoRepository) Stats() (*PhotoStats, error) {
	stats := &PhotoStats{ContentTypeDistribution: map[string]int64{}}

	if err := r.DB.Model(&models.Photo{}).Count(&stats.TotalPhotos).Error; err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}
	if err := r.DB.Model(&models.Photo{}).Where("processing_status = ?", database.StatusCompleted).Count(&stats.ProcessedPhotos).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed photos: %w", err)
	}
	if err := r.DB.Model(&models.Photo{}).Where("processing_status = ?", database.StatusFailed).Count(&stats.FailedPhotos).Error; err != nil {
		return nil, fmt.Errorf("failed to count failed photos: %w", err)
	}
	if err := r.DB.Model(&models.Photo{}).Where("processing_status = ?", database.StatusPending).Count(&stats.PendingPhotos).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending photos: %w", err)
	}
	if err := r.DB.Model(&models.Photo{}).Where("has_faces = ?", true).Count(&stats.PhotosWithFaces).Error; err != nil {
		return nil, fmt.Errorf("failed to count photos with faces: %w", err)
	}

	type contentTypeRow struct {
		ContentType string
		Count       int64
	}
	var rows []contentTypeRow
	err := r.DB.Model(&models.Photo{}).
		Select("content_type, COUNT(*) as count").
		Group("content_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get content type distribution: %w", err)
	}
	for _, row := range rows {
		stats.ContentTypeDistribution[row.ContentType] = row.Count
	}

	if stats.TotalPhotos > 0 {
		stats.CompletionRate = float64(stats.ProcessedPhotos) / float64(stats.TotalPhotos) * 100
	}

	return stats, nil
}
