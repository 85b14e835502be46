package repositories

import (
	"context"
	"fmt"

	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"gorm.io/gorm"
)

// AllocationRepository handles revenue_allocations table operations using GORM
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new GORM-based allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// ListByShow retrieves the current allocation row set for a show, in insertion order
func (r *AllocationRepository) ListByShow(ctx context.Context, showID string) ([]gormModels.RevenueAllocation, error) {
	var rows []gormModels.RevenueAllocation

	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Order("allocation_datetime ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allocations: %w", err)
	}

	return rows, nil
}

// DeleteForShow removes every allocation row of a show
func (r *AllocationRepository) DeleteForShow(ctx context.Context, showID string) error {
	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Delete(&gormModels.RevenueAllocation{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete allocations: %w", err)
	}
	return nil
}

// CountByShow returns the number of allocation rows for a show
func (r *AllocationRepository) CountByShow(ctx context.Context, showID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.RevenueAllocation{}).
		Where("show_id = ?", showID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count allocations: %w", err)
	}
	return count, nil
}
