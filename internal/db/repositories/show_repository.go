package repositories

import (
	"context"
	"errors"
	"fmt"

	"lumenstudio/darkroom/internal/constants"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"gorm.io/gorm"
)

// ShowRepository handles show table operations using GORM
type ShowRepository struct {
	db *gorm.DB
}

// NewShowRepository creates a new GORM-based show repository
func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// GetByID retrieves a show without relations
func (r *ShowRepository) GetByID(ctx context.Context, showID string) (*gormModels.Show, error) {
	var show gormModels.Show

	err := r.db.WithContext(ctx).
		Where("id = ?", showID).
		First(&show).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch show: %w", err)
	}

	return &show, nil
}

// GetByIDWithAssignments retrieves a show with assignments, their roles and users
func (r *ShowRepository) GetByIDWithAssignments(ctx context.Context, showID string) (*gormModels.Show, error) {
	var show gormModels.Show

	err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("Assignments.ShowRole").
		Preload("Assignments.User").
		Preload("Client").
		Where("id = ?", showID).
		First(&show).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch show: %w", err)
	}

	return &show, nil
}

// Create inserts a new show
func (r *ShowRepository) Create(ctx context.Context, show *gormModels.Show) error {
	if err := r.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}

// List retrieves shows with pagination and an optional status filter
func (r *ShowRepository) List(ctx context.Context, status constants.ShowStatus, limit, offset int) ([]gormModels.Show, int64, error) {
	var shows []gormModels.Show
	var total int64

	q := r.db.WithContext(ctx).Model(&gormModels.Show{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shows: %w", err)
	}

	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&shows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, total, nil
}

// ListByClient retrieves all shows for one client
func (r *ShowRepository) ListByClient(ctx context.Context, clientID string) ([]gormModels.Show, error) {
	var shows []gormModels.Show

	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows by client: %w", err)
	}

	return shows, nil
}

// CreateAssignment links a user+role to a show
func (r *ShowRepository) CreateAssignment(ctx context.Context, asg *gormModels.ShowAssignment) error {
	if err := r.db.WithContext(ctx).Create(asg).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// DeleteAssignment removes one assignment from a show
func (r *ShowRepository) DeleteAssignment(ctx context.Context, showID, assignmentID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND show_id = ?", assignmentID, showID).
		Delete(&gormModels.ShowAssignment{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assignment not found with ID: %s", assignmentID)
	}
	return nil
}

// UpdateStatus sets a show's status
func (r *ShowRepository) UpdateStatus(ctx context.Context, showID string, status constants.ShowStatus) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Show{}).
		Where("id = ?", showID).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update show status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("show not found with ID: %s", showID)
	}

	return nil
}
