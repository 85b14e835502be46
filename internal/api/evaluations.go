package api

import (
	"encoding/json"
	"net/http"

	"lumenstudio/darkroom/internal/auth"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

func toEvaluationDetail(e gormModels.Evaluation) dtos.EvaluationDetail {
	return dtos.EvaluationDetail{
		ID:           e.ID,
		ShowID:       e.ShowID,
		AssignmentID: e.AssignmentID,
		EvaluatorID:  e.EvaluatorID,
		Score:        e.Score,
		Comments:     e.Comments,
		CreatedAt:    e.CreatedAt,
	}
}

// CreateEvaluation handles POST /api/v1/shows/{show_id}/evaluations
func (h *Handlers) CreateEvaluation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req dtos.CreateEvaluationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		eval, err := h.deps.Services.Evaluations.Create(r.Context(), showID, claims.UserID(), req)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := toEvaluationDetail(*eval)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListShowEvaluations handles GET /api/v1/shows/{show_id}/evaluations
func (h *Handlers) ListShowEvaluations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		evals, err := h.deps.Services.Evaluations.ListByShow(r.Context(), showID)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		items := make([]dtos.EvaluationDetail, 0, len(evals))
		for _, e := range evals {
			items = append(items, toEvaluationDetail(e))
		}
		respondWithSuccess(w, http.StatusOK, &items)
	}
}
