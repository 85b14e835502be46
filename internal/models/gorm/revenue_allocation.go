package gorm

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueAllocation is one earner-or-fund row of a show's revenue split.
// Rows are replaced wholesale on every recalculation; they carry no history.
type RevenueAllocation struct {
	ID                 string          `gorm:"column:id;primaryKey;type:uuid"`
	ShowID             string          `gorm:"column:show_id;type:uuid;index"`
	AllocatedRoleName  string          `gorm:"column:allocated_role_name"`
	UserID             *string         `gorm:"column:user_id;type:uuid"`
	ShowRoleID         *string         `gorm:"column:show_role_id;type:uuid"`
	Amount             decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	CalculationNotes   string          `gorm:"column:calculation_notes"`
	AllocationDatetime time.Time       `gorm:"column:allocation_datetime"`

	// Relationships
	Show *Show `gorm:"foreignKey:ShowID"`
}

// TableName specifies the table name for GORM
func (RevenueAllocation) TableName() string {
	return "revenue_allocations"
}
