package repositories

import (
	"context"
	"fmt"

	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"gorm.io/gorm"
)

// PaymentRepository handles payment table operations using GORM
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new GORM-based payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *gormModels.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListByShow retrieves payments recorded against one show
func (r *PaymentRepository) ListByShow(ctx context.Context, showID string) ([]gormModels.Payment, error) {
	var payments []gormModels.Payment

	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}
