package api

import (
	"encoding/json"
	"net/http"

	"lumenstudio/darkroom/internal/models/dtos"
)

// SetConfig handles PUT /api/v1/admin/configs
func (h *Handlers) SetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SetConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cfgs, err := h.deps.Services.Conf.SetConfig(r.Context(), req.Key, req.Value)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondWithSuccess(w, http.StatusOK, cfgs)
	}
}

// GetConfigs handles GET /api/v1/admin/configs
func (h *Handlers) GetConfigs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfgs, err := h.deps.Services.Conf.GetAllConfigValues(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, http.StatusOK, &cfgs)
	}
}

// ListConfigKeys handles GET /api/v1/admin/configs/keys
func (h *Handlers) ListConfigKeys() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys := h.deps.Services.Conf.ListPossibleKeys()
		respondWithSuccess(w, http.StatusOK, &keys)
	}
}
