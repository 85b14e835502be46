package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"gorm.io/gorm"
)

// ClientRepository handles client table operations using GORM
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new GORM-based client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// GetByID retrieves a client by its ID
func (r *ClientRepository) GetByID(ctx context.Context, clientID string) (*gormModels.Client, error) {
	var client gormModels.Client

	err := r.db.WithContext(ctx).
		Where("id = ?", clientID).
		First(&client).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	return &client, nil
}

// Create inserts a new client
func (r *ClientRepository) Create(ctx context.Context, client *gormModels.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// Update persists editable client fields
func (r *ClientRepository) Update(ctx context.Context, client *gormModels.Client) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"full_name": client.FullName,
			"email":     client.Email,
			"phone":     client.Phone,
			"notes":     client.Notes,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client not found with ID: %s", client.ID)
	}
	return nil
}

// List retrieves clients with pagination
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]gormModels.Client, int64, error) {
	var clients []gormModels.Client
	var total int64

	if err := r.db.WithContext(ctx).Model(&gormModels.Client{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&clients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, total, nil
}
