package api

import (
	"encoding/json"
	"net/http"

	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

func toPaymentDetail(p gormModels.Payment) dtos.PaymentDetail {
	return dtos.PaymentDetail{
		ID:     p.ID,
		ShowID: p.ShowID,
		Amount: p.Amount,
		Method: p.Method,
		PaidAt: p.PaidAt,
		Notes:  p.Notes,
	}
}

// RecordPayment handles POST /api/v1/payments
func (h *Handlers) RecordPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		payment, err := h.deps.Services.Payments.Record(r.Context(), req)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		resp := toPaymentDetail(*payment)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListShowPayments handles GET /api/v1/shows/{show_id}/payments
func (h *Handlers) ListShowPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID := chi.URLParam(r, "show_id")

		payments, err := h.deps.Services.Payments.ListByShow(r.Context(), showID)
		if err != nil {
			respondWithError(w, errStatus(err), err.Error())
			return
		}

		total, err := h.deps.Repo.Reports.PaymentsTotalForShow(r.Context(), showID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := dtos.ShowPaymentsResponse{
			Items:     make([]dtos.PaymentDetail, 0, len(payments)),
			TotalPaid: total,
		}
		for _, p := range payments {
			resp.Items = append(resp.Items, toPaymentDetail(p))
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
