package repositories

import (
	"context"
	"fmt"
	"time"

	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ReportRepository serves aggregate reads straight from SQL; these queries
// never go through GORM entities.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db}
}

// RevenueByRole sums allocation rows per label over [from, to).
func (r *ReportRepository) RevenueByRole(ctx context.Context, from, to time.Time) ([]entities.RevenueReportRow, error) {
	var rows []entities.RevenueReportRow

	if err := r.db.SelectContext(ctx, &rows, constants.RevenueByRole, from, to); err != nil {
		return nil, fmt.Errorf("revenue report query: %w", err)
	}
	return rows, nil
}

// PaymentsTotalForShow returns the sum of recorded payments for a show.
func (r *ReportRepository) PaymentsTotalForShow(ctx context.Context, showID string) (decimal.Decimal, error) {
	var total decimal.Decimal

	if err := r.db.QueryRowxContext(ctx, constants.PaymentsTotalByShow, showID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("payments total query: %w", err)
	}
	return total, nil
}
