package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"entrelink/investor-match/internal/models"
)

type EmailRequestRepository interface {
	Create(request *models.EmailRequest) error
	FindByID(id uuid.UUID) (*models.EmailRequest, error)
}

type emailRequestRepository struct {
	db *gorm.DB
}

func NewEmailRequestRepository(db *gorm.DB) EmailRequestRepository {
	return &emailRequestRepository{db: db}
}

// Create implements EmailRequestRepository.
func (r *emailRequestRepository) Create(request *models.EmailRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	return nil
}

// FindByID implements EmailRequestRepository.
func (r *emailRequestRepository) FindByID(id uuid.UUID) (*models.EmailRequest, error) {
	var request models.EmailRequest
	if err := r.db.Where("id = ?", id).First(&request).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("email request not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find email request: %w", err)
	}
	return &request, nil
}
