package gorm

import (
	"lumenstudio/darkroom/internal/constants"
	"time"

	"github.com/shopspring/decimal"
)

type Show struct {
	ID         string               `gorm:"column:id;primaryKey;type:uuid"`
	ClientID   string               `gorm:"column:client_id;type:uuid;index"`
	Title      string               `gorm:"column:title"`
	Status     constants.ShowStatus `gorm:"column:status;type:show_status;default:INQUIRY"`
	TotalPrice decimal.Decimal      `gorm:"column:total_price;type:decimal(12,2)"`
	ShootDate  *time.Time           `gorm:"column:shoot_date"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Client      *Client          `gorm:"foreignKey:ClientID"`
	Assignments []ShowAssignment `gorm:"foreignKey:ShowID"`
}

// TableName specifies the table name for GORM
func (Show) TableName() string {
	return "shows"
}

type ShowRole struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ShowRole) TableName() string {
	return "show_roles"
}

type ShowAssignment struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid"`
	ShowID     string    `gorm:"column:show_id;type:uuid;index;uniqueIndex:idx_show_user_role"`
	UserID     string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_show_user_role"`
	ShowRoleID string    `gorm:"column:show_role_id;type:uuid;uniqueIndex:idx_show_user_role"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID"`
	ShowRole ShowRole `gorm:"foreignKey:ShowRoleID"`
}

// TableName specifies the table name for GORM
func (ShowAssignment) TableName() string {
	return "show_assignments"
}
