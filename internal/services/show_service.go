package services

import (
	"context"
	"fmt"

	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/db/repositories"
	"lumenstudio/darkroom/internal/logging"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShowService owns show lifecycle operations. Moving a show into a terminal
// status (delivered/completed) fires the same recalculation path as the
// manual admin trigger.
type ShowService struct {
	shows   *repositories.ShowRepository
	roles   *repositories.RoleRepository
	users   *repositories.UserRepository
	clients *repositories.ClientRepository
	allocs  *AllocationService
}

func NewShowService(
	shows *repositories.ShowRepository,
	roles *repositories.RoleRepository,
	users *repositories.UserRepository,
	clients *repositories.ClientRepository,
	allocs *AllocationService,
) *ShowService {
	return &ShowService{
		shows:   shows,
		roles:   roles,
		users:   users,
		clients: clients,
		allocs:  allocs,
	}
}

func (s *ShowService) Create(ctx context.Context, req dtos.CreateShowRequest) (*gormModels.Show, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	price, err := decimal.NewFromString(req.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("total_price %q is not numeric: %w", req.TotalPrice, err)
	}
	if price.Cmp(decimal.Zero) < 0 {
		return nil, fmt.Errorf("total_price must not be negative")
	}

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client not found with ID: %s", req.ClientID)
	}

	show := &gormModels.Show{
		ID:         uuid.NewString(),
		ClientID:   req.ClientID,
		Title:      req.Title,
		Status:     constants.StatusInquiry,
		TotalPrice: price,
		ShootDate:  req.ShootDate,
	}

	if err := s.shows.Create(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

func (s *ShowService) Get(ctx context.Context, showID string) (*gormModels.Show, error) {
	show, err := s.shows.GetByIDWithAssignments(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}
	return show, nil
}

func (s *ShowService) List(ctx context.Context, status constants.ShowStatus, limit, offset int) ([]gormModels.Show, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, fmt.Errorf("unknown show status %q", status)
	}
	return s.shows.List(ctx, status, limit, offset)
}

func (s *ShowService) ListByClient(ctx context.Context, clientID string) ([]gormModels.Show, error) {
	return s.shows.ListByClient(ctx, clientID)
}

// UpdateStatus persists the new status and, when the status is terminal,
// recalculates the show's revenue allocation. The status change survives a
// failed recalculation; the error is surfaced so operators can re-trigger.
func (s *ShowService) UpdateStatus(ctx context.Context, showID string, status constants.ShowStatus) (*gormModels.Show, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown show status %q", status)
	}

	show, err := s.shows.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}

	if err := s.shows.UpdateStatus(ctx, showID, status); err != nil {
		return nil, err
	}
	show.Status = status

	if status.IsTerminal() {
		if _, err := s.allocs.RecalculateAndSave(ctx, showID); err != nil {
			logging.Error("Automatic allocation recalculation failed",
				"show_id", showID,
				"status", status.String(),
				"error", err.Error(),
			)
			return show, fmt.Errorf("status updated but allocation recalculation failed: %w", err)
		}
	}

	return show, nil
}

// Assign links a user in a given show role to a show.
func (s *ShowService) Assign(ctx context.Context, showID string, req dtos.CreateAssignmentRequest) (*gormModels.ShowAssignment, error) {
	show, err := s.shows.GetByIDWithAssignments(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found with ID: %s", req.UserID)
	}

	role, err := s.roles.GetByID(ctx, req.ShowRoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("show role not found with ID: %s", req.ShowRoleID)
	}

	for _, a := range show.Assignments {
		if a.UserID == req.UserID && a.ShowRoleID == req.ShowRoleID {
			return nil, fmt.Errorf("user %s already assigned to role %s on this show", user.FullName, role.Name)
		}
	}

	asg := &gormModels.ShowAssignment{
		ID:         uuid.NewString(),
		ShowID:     showID,
		UserID:     req.UserID,
		ShowRoleID: req.ShowRoleID,
	}
	if err := s.shows.CreateAssignment(ctx, asg); err != nil {
		return nil, err
	}
	asg.User = *user
	asg.ShowRole = *role
	return asg, nil
}

// Unassign removes an assignment from a show.
func (s *ShowService) Unassign(ctx context.Context, showID, assignmentID string) error {
	return s.shows.DeleteAssignment(ctx, showID, assignmentID)
}
