package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"photo-organiser/models"
)

// FaceRepository handles database operations for Face entities
type FaceRepository struct {
	DB *gorm.DB
}

// NewFaceRepository creates a new instance of FaceRepository
func NewFaceRepository(db *gorm.DB) *FaceRepository {
	return &FaceRepository{DB: db}
}

// Create creates a new face record in the database
func (r *FaceRepository) Create(face *models.Face) error {
	now := time.Now().Unix()
	if face.CreatedAt == 0 {
		face.CreatedAt = now
	}
	face.UpdatedAt = now

	if err := r.DB.Create(face).Error; err != nil {
		return fmt.Errorf("failed to create face for photo ID %d: %w", face.PhotoID, err)
	}
	return nil
}

// GetByID retrieves a face by its ID, preloading the associated Person
func (r *FaceRepository) GetByID(id uint) (*models.Face, error) {
	var face models.Face
	err := r.DB.Preload("Person").First(&face, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get face by ID %d: %w", id, err)
	}
	return &face, nil
}

// ListByPhotoID retrieves all faces for a given photo, preloading Person
func (r *FaceRepository) ListByPhotoID(photoID uint) ([]models.Face, error) {
	var faces []models.Face
	err := r.DB.Preload("Person").Where("photo_id = ?", photoID).Order("id ASC").Find(&faces).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list faces for photo ID %d: %w", photoID, err)
	}
	return faces, nil
}

// ReplaceForPhoto deletes every existing face for the photo and inserts the
// new set in one transaction. Reprocessing a photo goes through here so stale
// detections from earlier attempts cannot accumulate.
func (r *FaceRepository) ReplaceForPhoto(photoID uint, faces []models.Face) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photoID).Delete(&models.Face{}).Error; err != nil {
			return fmt.Errorf("failed to delete old faces for photo ID %d: %w", photoID, err)
		}

		if len(faces) == 0 {
			return nil
		}

		now := time.Now().Unix()
		for i := range faces {
			faces[i].PhotoID = photoID
			faces[i].CreatedAt = now
			faces[i].UpdatedAt = now
		}
		if err := tx.Create(&faces).Error; err != nil {
			return fmt.Errorf("failed to insert new faces for photo ID %d: %w", photoID, err)
		}
		return nil
	})
}

// TagFace assigns a PersonID to an existing face
func (r *FaceRepository) TagFace(faceID uint, personID uint) error {
	updates := map[string]interface{}{
		"person_id":  personID,
		"updated_at": time.Now().Unix(),
	}
	result := r.DB.Model(&models.Face{}).Where("id = ?", faceID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to tag face ID %d with person ID %d: %w", faceID, personID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UntagFace sets the PersonID of an existing face to NULL.
func (r *FaceRepository) UntagFace(faceID uint) error {
	updates := map[string]interface{}{
		"person_id":  gorm.Expr("NULL"),
		"updated_at": time.Now().Unix(),
	}
	result := r.DB.Model(&models.Face{}).Where("id = ?", faceID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to untag face ID %d: %w", faceID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a face by its ID
func (r *FaceRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Face{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete face ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
