package api

import (
	"encoding/json"
	"net/http"

	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
)

// ListShowRoles handles GET /api/v1/roles
func (h *Handlers) ListShowRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := h.deps.Repo.Roles.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]dtos.ShowRoleDetail, 0, len(roles))
		for _, role := range roles {
			items = append(items, dtos.ShowRoleDetail{
				ID:          role.ID,
				Name:        role.Name,
				Description: role.Description,
			})
		}
		respondWithSuccess(w, http.StatusOK, &items)
	}
}

// CreateShowRole handles POST /api/v1/roles
func (h *Handlers) CreateShowRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateShowRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		role := &gormModels.ShowRole{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
		}
		if err := h.deps.Repo.Roles.Create(r.Context(), role); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := dtos.ShowRoleDetail{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
		}
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}
