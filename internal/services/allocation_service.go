package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lumenstudio/darkroom/internal/allocation"
	"lumenstudio/darkroom/internal/db/repositories"
	"lumenstudio/darkroom/internal/logging"
	"lumenstudio/darkroom/internal/metrics"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ErrShowNotFound is returned when the referenced show does not exist.
var ErrShowNotFound = errors.New("show not found")

// PercentResolver supplies the full percentage set for one allocation run.
type PercentResolver interface {
	ResolvePercents(ctx context.Context) (allocation.Percents, error)
}

// AllocationService recalculates a show's revenue split and replaces its
// allocation rows. The delete+insert pair always runs inside one transaction,
// so a failed run leaves the previous row set untouched.
type AllocationService struct {
	db       *gorm.DB
	shows    *repositories.ShowRepository
	allocs   *repositories.AllocationRepository
	percents PercentResolver
	metrics  *metrics.MetricsRegistry

	// Collapses concurrent recalculations of the same show into one run so
	// two replace operations can never interleave their delete/insert phases.
	group singleflight.Group
}

func NewAllocationService(
	db *gorm.DB,
	shows *repositories.ShowRepository,
	allocs *repositories.AllocationRepository,
	percents PercentResolver,
	metricsReg *metrics.MetricsRegistry,
) *AllocationService {
	return &AllocationService{
		db:       db,
		shows:    shows,
		allocs:   allocs,
		percents: percents,
		metrics:  metricsReg,
	}
}

// RecalculateAndSave loads the show, recomputes its allocation and atomically
// replaces the stored rows. Callers concurrently requesting the same show
// share a single run and receive the same result.
func (s *AllocationService) RecalculateAndSave(ctx context.Context, showID string) ([]gormModels.RevenueAllocation, error) {
	v, err, _ := s.group.Do(showID, func() (interface{}, error) {
		return s.recalculate(ctx, showID)
	})
	if err != nil {
		s.countRun("error")
		return nil, err
	}
	s.countRun("ok")
	return v.([]gormModels.RevenueAllocation), nil
}

func (s *AllocationService) recalculate(ctx context.Context, showID string) ([]gormModels.RevenueAllocation, error) {
	show, err := s.shows.GetByIDWithAssignments(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}

	pcts, err := s.percents.ResolvePercents(ctx)
	if err != nil {
		return nil, err
	}

	asgs := make([]allocation.Assignment, 0, len(show.Assignments))
	for _, a := range show.Assignments {
		asgs = append(asgs, allocation.Assignment{
			ID:         a.ID,
			UserID:     a.UserID,
			ShowRoleID: a.ShowRoleID,
			UserName:   a.User.FullName,
			RoleName:   a.ShowRole.Name,
		})
	}

	details := allocation.Calculate(show.TotalPrice, asgs, pcts)

	if len(details) == 0 {
		// Nothing to allocate (price <= 0): clear whatever was saved before.
		if err := s.allocs.DeleteForShow(ctx, showID); err != nil {
			return nil, err
		}
		logging.Info("Allocation cleared, show has no allocatable price",
			"show_id", showID,
			"total_price", show.TotalPrice.String(),
		)
		return []gormModels.RevenueAllocation{}, nil
	}

	now := time.Now().UTC()
	rows := make([]gormModels.RevenueAllocation, 0, len(details))
	for _, d := range details {
		rows = append(rows, gormModels.RevenueAllocation{
			ID:                 uuid.NewString(),
			ShowID:             showID,
			AllocatedRoleName:  d.RoleLabel,
			UserID:             d.UserID,
			ShowRoleID:         d.ShowRoleID,
			Amount:             d.Amount,
			CalculationNotes:   d.Notes,
			AllocationDatetime: now,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("show_id = ?", showID).
			Delete(&gormModels.RevenueAllocation{}).Error; err != nil {
			return fmt.Errorf("failed to delete prior allocations: %w", err)
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert allocations: %w", err)
		}

		return nil
	})
	if err != nil {
		logging.Error("Allocation replace transaction failed, previous rows kept",
			"show_id", showID,
			"error", err.Error(),
		)
		return nil, fmt.Errorf("failed to replace allocations for show %s: %w", showID, err)
	}

	if s.metrics != nil {
		s.metrics.AllocationRowsWritten.Add(float64(len(rows)))
	}
	logging.Info("Allocation recalculated",
		"show_id", showID,
		"rows", len(rows),
		"total_price", show.TotalPrice.String(),
	)

	return rows, nil
}

// ListForShow returns the currently saved allocation rows for a show.
func (s *AllocationService) ListForShow(ctx context.Context, showID string) ([]gormModels.RevenueAllocation, error) {
	show, err := s.shows.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}
	return s.allocs.ListByShow(ctx, showID)
}

func (s *AllocationService) countRun(outcome string) {
	if s.metrics != nil {
		s.metrics.AllocationRunsTotal.WithLabelValues(outcome).Inc()
	}
}
