package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"gorm.io/gorm"
)

// RoleRepository handles show_roles table operations using GORM
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new GORM-based show role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByID retrieves a show role by ID
func (r *RoleRepository) GetByID(ctx context.Context, roleID string) (*gormModels.ShowRole, error) {
	var role gormModels.ShowRole

	err := r.db.WithContext(ctx).
		Where("id = ?", roleID).
		First(&role).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch show role: %w", err)
	}

	return &role, nil
}

// List retrieves all show roles
func (r *RoleRepository) List(ctx context.Context) ([]gormModels.ShowRole, error) {
	var roles []gormModels.ShowRole

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list show roles: %w", err)
	}

	return roles, nil
}

// Create inserts a new show role
func (r *RoleRepository) Create(ctx context.Context, role *gormModels.ShowRole) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("failed to create show role: %w", err)
	}
	return nil
}
