package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"photo-organiser/models"
)

// PersonRepository handles database operations for Person entities
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// Create creates a new person record in the database
func (r *PersonRepository) Create(person *models.Person) error {
	now := time.Now().Unix()
	if person.CreatedAt == 0 {
		person.CreatedAt = now
	}
	if person.UpdatedAt == 0 {
		person.UpdatedAt = now
	}

	if err := r.DB.Create(person).Error; err != nil {
		return fmt.Errorf("failed to create person %s: %w", person.Name, err)
	}
	return nil
}

// GetByID retrieves a person by their ID, preloading Faces
func (r *PersonRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.DB.Preload("Faces").First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get person by ID %d: %w", id, err)
	}
	return &person, nil
}

// GetByName retrieves a person by their unique name
func (r *PersonRepository) GetByName(name string) (*models.Person, error) {
	var person models.Person
	err := r.DB.Where("name = ?", name).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get person by name %s: %w", name, err)
	}
	return &person, nil
}

// ListAll retrieves all people, ordered by name
func (r *PersonRepository) ListAll() ([]models.Person, error) {
	var people []models.Person
	err := r.DB.Order("name ASC").Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

// Update updates an existing person's details
func (r *PersonRepository) Update(person *models.Person) error {
	person.UpdatedAt = time.Now().Unix()
	result := r.DB.Model(&models.Person{ID: person.ID}).Updates(models.Person{
		Name:        person.Name,
		DisplayName: person.DisplayName,
		Description: person.Description,
		FaceCount:   person.FaceCount,
		UpdatedAt:   person.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update person ID %d: %w", person.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a person by their ID. Their faces stay behind untagged.
func (r *PersonRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Face{}).Where("person_id = ?", id).Updates(map[string]interface{}{
			"person_id":  gorm.Expr("NULL"),
			"updated_at": time.Now().Unix(),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to untag faces for person ID %d: %w", id, err)
		}

		result := tx.Delete(&models.Person{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete person ID %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// PhotoCount returns the number of distinct photos containing at least one of
// this person's faces
func (r *PersonRepository) PhotoCount(personID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Face{}).
		Where("person_id = ?", personID).
		Distinct("photo_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count photos for person ID %d: %w", personID, err)
	}
	return count, nil
}
