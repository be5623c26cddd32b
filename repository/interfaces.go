package repository

import (
	"photo-organiser/models"
)

// PhotoRepositoryInterface defines the methods for photo data operations
type PhotoRepositoryInterface interface {
	Create(photo *models.Photo) error
	GetByID(id uint) (*models.Photo, error)
	GetByPath(filePath string) (*models.Photo, error)
	Update(photo *models.Photo) error
	SetStatus(photoID uint, status string) error
	Delete(id uint) error
	Stats() (*PhotoStats, error)
}

// FaceRepositoryInterface defines the methods for face data operations
type FaceRepositoryInterface interface {
	Create(face *models.Face) error
	GetByID(id uint) (*models.Face, error)
	ListByPhotoID(photoID uint) ([]models.Face, error)
	ReplaceForPhoto(photoID uint, faces []models.Face) error
	TagFace(faceID uint, personID uint) error
	UntagFace(faceID uint) error
	Delete(id uint) error
}

// PersonRepositoryInterface defines the methods for person data operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id uint) (*models.Person, error)
	GetByName(name string) (*models.Person, error)
	ListAll() ([]models.Person, error)
	Update(person *models.Person) error
	Delete(id uint) error
	PhotoCount(personID uint) (int64, error)
}

// ProcessingLogRepositoryInterface defines the methods for the append-only
// processing audit trail. Log rows are never updated or deleted.
type ProcessingLogRepositoryInterface interface {
	Create(entry *models.ProcessingLog) error
	ListByPhotoID(photoID uint) ([]models.ProcessingLog, error)
	ListByOperation(operation string, limit int) ([]models.ProcessingLog, error)
}
