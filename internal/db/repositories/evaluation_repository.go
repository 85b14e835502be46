package repositories

import (
	"context"
	"fmt"

	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"gorm.io/gorm"
)

// EvaluationRepository handles staff_evaluations table operations using GORM
type EvaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new GORM-based evaluation repository
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create inserts a new evaluation
func (r *EvaluationRepository) Create(ctx context.Context, eval *gormModels.Evaluation) error {
	if err := r.db.WithContext(ctx).Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

// ListByShow retrieves evaluations for one show
func (r *EvaluationRepository) ListByShow(ctx context.Context, showID string) ([]gormModels.Evaluation, error) {
	var evals []gormModels.Evaluation

	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Order("created_at ASC").
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	return evals, nil
}
