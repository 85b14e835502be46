package gorm

import (
	"lumenstudio/darkroom/internal/constants"
	"time"
)

type User struct {
	ID        string              `gorm:"column:id;primaryKey;type:uuid"`
	Email     string              `gorm:"column:email;uniqueIndex"`
	FullName  string              `gorm:"column:full_name"`
	StaffRole constants.StaffRole `gorm:"column:staff_role;type:staff_role"`
	IsActive  bool                `gorm:"column:is_active;default:true"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Assignments []ShowAssignment `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
