package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

func toClientDetail(c *gormModels.Client) dtos.ClientDetail {
	return dtos.ClientDetail{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// CreateClient handles POST /api/v1/clients
func (h *Handlers) CreateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		client, err := h.deps.Services.Clients.Create(r.Context(), req)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := toClientDetail(client)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// GetClient handles GET /api/v1/clients/{client_id}
func (h *Handlers) GetClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := chi.URLParam(r, "client_id")

		client, err := h.deps.Services.Clients.Get(r.Context(), clientID)
		if err != nil {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}

		resp := toClientDetail(client)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// UpdateClient handles PUT /api/v1/clients/{client_id}
func (h *Handlers) UpdateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := chi.URLParam(r, "client_id")

		var req dtos.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		client, err := h.deps.Services.Clients.Update(r.Context(), clientID, req)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := toClientDetail(client)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListClients handles GET /api/v1/clients
func (h *Handlers) ListClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > 100 {
			limit = 20
		}
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if offset < 0 {
			offset = 0
		}

		clients, total, err := h.deps.Services.Clients.List(r.Context(), limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]dtos.ClientDetail, 0, len(clients))
		for i := range clients {
			items = append(items, toClientDetail(&clients[i]))
		}
		resp := dtos.PagedResponse[dtos.ClientDetail]{
			Items:  items,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// ListClientShows handles GET /api/v1/clients/{client_id}/shows
func (h *Handlers) ListClientShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := chi.URLParam(r, "client_id")

		if _, err := h.deps.Services.Clients.Get(r.Context(), clientID); err != nil {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}

		shows, err := h.deps.Services.Shows.ListByClient(r.Context(), clientID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]dtos.ShowSummary, 0, len(shows))
		for _, s := range shows {
			items = append(items, toShowSummary(s))
		}
		respondWithSuccess(w, http.StatusOK, &items)
	}
}
