package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"entrelink/investor-match/internal/models"
)

// QueryLogRepository is the append-only audit sink for matching runs.
type QueryLogRepository interface {
	Create(queryLog *models.QueryLog) error
	FindRecent(limit int) ([]models.QueryLog, error)
}

type queryLogRepository struct {
	db *gorm.DB
}

func NewQueryLogRepository(db *gorm.DB) QueryLogRepository {
	return &queryLogRepository{db: db}
}

// Create implements QueryLogRepository.
func (r *queryLogRepository) Create(queryLog *models.QueryLog) error {
	if err := r.db.Create(queryLog).Error; err != nil {
		return fmt.Errorf("failed to create query log: %w", err)
	}
	return nil
}

// FindRecent implements QueryLogRepository.
func (r *queryLogRepository) FindRecent(limit int) ([]models.QueryLog, error) {
	var logs []models.QueryLog
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find query logs: %w", err)
	}
	return logs, nil
}
