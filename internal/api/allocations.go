package api

import (
	"net/http"

	"lumenstudio/darkroom/internal/logging"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

func toAllocationRows(rows []gormModels.RevenueAllocation) []dtos.AllocationRow {
	out := make([]dtos.AllocationRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dtos.AllocationRow{
			ID:                 row.ID,
			AllocatedRoleName:  row.AllocatedRoleName,
			UserID:             row.UserID,
			ShowRoleID:         row.ShowRoleID,
			Amount:             row.Amount,
			CalculationNotes:   row.CalculationNotes,
			AllocationDatetime: row.AllocationDatetime,
		})
	}
	return out
}

// TriggerAllocation handles POST /api/v1/shows/{show_id}/allocations/trigger-calculation
//
// Manual admin trigger; shares the replace-all contract with the automatic
// recalculation fired on delivered/completed status transitions.
func (h *Handlers) TriggerAllocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		logging.WithShow(r.Header.Get("X-Request-ID"), showID).
			Infow("Manual allocation recalculation requested")

		rows, err := h.deps.Services.Allocations.RecalculateAndSave(r.Context(), showID)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := toAllocationRows(rows)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListAllocations handles GET /api/v1/shows/{show_id}/allocations
func (h *Handlers) ListAllocations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		rows, err := h.deps.Services.Allocations.ListForShow(r.Context(), showID)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := toAllocationRows(rows)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
