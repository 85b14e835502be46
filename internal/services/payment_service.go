package services

import (
	"context"
	"fmt"
	"time"

	"lumenstudio/darkroom/internal/db/repositories"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentService struct {
	payments *repositories.PaymentRepository
	shows    *repositories.ShowRepository
}

func NewPaymentService(payments *repositories.PaymentRepository, shows *repositories.ShowRepository) *PaymentService {
	return &PaymentService{payments: payments, shows: shows}
}

func (s *PaymentService) Record(ctx context.Context, req dtos.CreatePaymentRequest) (*gormModels.Payment, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount %q is not numeric: %w", req.Amount, err)
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	show, err := s.shows.GetByID(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, req.ShowID)
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment := &gormModels.Payment{
		ID:     uuid.NewString(),
		ShowID: req.ShowID,
		Amount: amount,
		Method: req.Method,
		PaidAt: paidAt,
		Notes:  req.Notes,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListByShow(ctx context.Context, showID string) ([]gormModels.Payment, error) {
	show, err := s.shows.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}
	return s.payments.ListByShow(ctx, showID)
}
