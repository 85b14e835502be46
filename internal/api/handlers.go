package api

import (
	"errors"
	"net/http"

	"lumenstudio/darkroom/internal/common"
	"lumenstudio/darkroom/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// errStatus maps service errors onto HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrShowNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConfigMissing):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
