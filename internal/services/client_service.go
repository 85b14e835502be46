package services

import (
	"context"
	"fmt"

	"lumenstudio/darkroom/internal/db/repositories"
	"lumenstudio/darkroom/internal/models/dtos"
	gormModels "lumenstudio/darkroom/internal/models/gorm"

	"github.com/google/uuid"
)

type ClientService struct {
	clients *repositories.ClientRepository
}

func NewClientService(clients *repositories.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

func (s *ClientService) Create(ctx context.Context, req dtos.CreateClientRequest) (*gormModels.Client, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	client := &gormModels.Client{
		ID:       uuid.NewString(),
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, clientID string) (*gormModels.Client, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client not found with ID: %s", clientID)
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, clientID string, req dtos.CreateClientRequest) (*gormModels.Client, error) {
	client, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		client.FullName = req.FullName
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	client.Phone = req.Phone
	client.Notes = req.Notes

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, limit, offset int) ([]gormModels.Client, int64, error) {
	return s.clients.List(ctx, limit, offset)
}
