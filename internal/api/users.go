package api

import (
	"net/http"

	"lumenstudio/darkroom/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// ListUsers handles GET /api/v1/users
func (h *Handlers) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.deps.Repo.Users.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]dtos.UserDetail, 0, len(users))
		for _, u := range users {
			items = append(items, dtos.UserDetail{
				ID:        u.ID,
				Email:     u.Email,
				FullName:  u.FullName,
				StaffRole: u.StaffRole.String(),
				IsActive:  u.IsActive,
			})
		}
		respondWithSuccess(w, http.StatusOK, &items)
	}
}

// GetUser handles GET /api/v1/users/{user_id}
func (h *Handlers) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		user, err := h.deps.Repo.Users.GetByID(r.Context(), userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if user == nil {
			respondWithError(w, http.StatusNotFound, "user not found")
			return
		}

		resp := dtos.UserDetail{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			StaffRole: user.StaffRole.String(),
			IsActive:  user.IsActive,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
