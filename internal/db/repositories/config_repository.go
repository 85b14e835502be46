package repositories

import (
	"context"
	"fmt"

	"lumenstudio/darkroom/internal/constants"
	"lumenstudio/darkroom/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ConfigRepository struct {
	db *sqlx.DB
}

func NewConfigRepository(db *sqlx.DB) *ConfigRepository {
	return &ConfigRepository{db}
}

func (r *ConfigRepository) GetAll(ctx context.Context) (*[]entities.ConfigValueRow, error) {
	var rows []entities.ConfigValueRow
	if err := r.db.SelectContext(ctx, &rows, constants.GetStudioConfigs); err != nil {
		return nil, fmt.Errorf("fetch configuration values: %w", err)
	}
	return &rows, nil
}

func (r *ConfigRepository) Upsert(ctx context.Context, key, value, valueType string) error {
	if _, err := r.db.ExecContext(ctx, constants.UpsertStudioConfig, key, value, valueType); err != nil {
		return fmt.Errorf("upsert configuration %q: %w", key, err)
	}
	return nil
}
