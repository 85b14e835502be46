package services

import (
	"context"
	"fmt"

	"lumenstudio/darkroom/internal/db/repositories"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
)

type EvaluationService struct {
	evals *repositories.EvaluationRepository
	shows *repositories.ShowRepository
}

func NewEvaluationService(evals *repositories.EvaluationRepository, shows *repositories.ShowRepository) *EvaluationService {
	return &EvaluationService{evals: evals, shows: shows}
}

func (s *EvaluationService) Create(ctx context.Context, showID, evaluatorID string, req dtos.CreateEvaluationRequest) (*gormModels.Evaluation, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5")
	}

	show, err := s.shows.GetByIDWithAssignments(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}

	found := false
	for _, a := range show.Assignments {
		if a.ID == req.AssignmentID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("assignment %s does not belong to show %s", req.AssignmentID, showID)
	}

	eval := &gormModels.Evaluation{
		ID:           uuid.NewString(),
		ShowID:       showID,
		AssignmentID: req.AssignmentID,
		EvaluatorID:  evaluatorID,
		Score:        req.Score,
		Comments:     req.Comments,
	}
	if err := s.evals.Create(ctx, eval); err != nil {
		return nil, err
	}
	return eval, nil
}

func (s *EvaluationService) ListByShow(ctx context.Context, showID string) ([]gormModels.Evaluation, error) {
	show, err := s.shows.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	}
	return s.evals.ListByShow(ctx, showID)
}
