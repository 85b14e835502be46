package api

import (
	"net/http"
	"time"
)

// RevenueReport handles GET /api/v1/reports/revenue?from=2026-01-01&to=2026-02-01
func (h *Handlers) RevenueReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const layout = "2006-01-02"

		from, err := time.Parse(layout, r.URL.Query().Get("from"))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid 'from' date, expected YYYY-MM-DD")
			return
		}
		to, err := time.Parse(layout, r.URL.Query().Get("to"))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid 'to' date, expected YYYY-MM-DD")
			return
		}
		if !to.After(from) {
			respondWithError(w, http.StatusBadRequest, "'to' must be after 'from'")
			return
		}

		rows, err := h.deps.Repo.Reports.RevenueByRole(r.Context(), from, to)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, http.StatusOK, &rows)
	}
}
