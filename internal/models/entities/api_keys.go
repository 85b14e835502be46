package entities

import "lumenstudio/darkroom/internal/constants"

type ApiKey struct {
	ApiKey    string              `db:"id"`
	Status    bool                `db:"status"`
	StaffID   string              `db:"staff_id"`
	StaffRole constants.StaffRole `db:"staff_role"`
}
