package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

func toShowSummary(s gormModels.Show) dtos.ShowSummary {
	return dtos.ShowSummary{
		ID:         s.ID,
		ClientID:   s.ClientID,
		Title:      s.Title,
		Status:     s.Status.String(),
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
	}
}

func toShowDetail(s *gormModels.Show) dtos.ShowDetail {
	detail := dtos.ShowDetail{
		ID:          s.ID,
		ClientID:    s.ClientID,
		Title:       s.Title,
		Status:      s.Status.String(),
		TotalPrice:  s.TotalPrice,
		ShootDate:   s.ShootDate,
		Assignments: make([]dtos.AssignmentDetail, 0, len(s.Assignments)),
		CreatedAt:   s.CreatedAt,
	}
	if s.Client != nil {
		detail.ClientName = s.Client.FullName
	}
	for _, a := range s.Assignments {
		detail.Assignments = append(detail.Assignments, dtos.AssignmentDetail{
			ID:       a.ID,
			UserID:   a.UserID,
			UserName: a.User.FullName,
			RoleID:   a.ShowRoleID,
			RoleName: a.ShowRole.Name,
		})
	}
	return detail
}

// CreateShow handles POST /api/v1/shows
func (h *Handlers) CreateShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateShowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		show, err := h.deps.Services.Shows.Create(r.Context(), req)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.deps.Metrics.ShowsCreatedTotal.Inc()

		resp := toShowSummary(*show)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// GetShow handles GET /api/v1/shows/{show_id}
func (h *Handlers) GetShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		show, err := h.deps.Services.Shows.Get(r.Context(), showID)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := toShowDetail(show)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListShows handles GET /api/v1/shows
func (h *Handlers) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if offset < 0 {
			offset = 0
		}
		status := constants.ShowStatus(r.URL.Query().Get("status"))

		shows, total, err := h.deps.Services.Shows.List(r.Context(), status, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		items := make([]dtos.ShowSummary, 0, len(shows))
		for _, s := range shows {
			items = append(items, toShowSummary(s))
		}
		resp := dtos.PagedResponse[dtos.ShowSummary]{
			Items:  items,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// UpdateShowStatus handles PUT /api/v1/shows/{show_id}/status
func (h *Handlers) UpdateShowStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		var req dtos.UpdateShowStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		status := constants.ShowStatus(req.Status)
		if !status.IsValid() {
			respondWithError(w, http.StatusBadRequest, "unknown show status "+req.Status)
			return
		}

		show, err := h.deps.Services.Shows.UpdateStatus(r.Context(), showID, status)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := toShowSummary(*show)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// AssignToShow handles POST /api/v1/shows/{show_id}/assignments
func (h *Handlers) AssignToShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		var req dtos.CreateAssignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		asg, err := h.deps.Services.Shows.Assign(r.Context(), showID, req)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := dtos.AssignmentDetail{
			ID:       asg.ID,
			UserID:   asg.UserID,
			UserName: asg.User.FullName,
			RoleID:   asg.ShowRoleID,
			RoleName: asg.ShowRole.Name,
		}
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// UnassignFromShow handles DELETE /api/v1/shows/{show_id}/assignments/{assignment_id}
func (h *Handlers) UnassignFromShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")
		assignmentID := chi.URLParam(r, "assignment_id")

		if err := h.deps.Services.Shows.Unassign(r.Context(), showID, assignmentID); err != nil {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}

		msg := "assignment removed"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
