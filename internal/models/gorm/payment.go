package gorm

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID        string          `gorm:"column:id;primaryKey;type:uuid"`
	ShowID    string          `gorm:"column:show_id;type:uuid;index"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	Method    string          `gorm:"column:method"`
	PaidAt    time.Time       `gorm:"column:paid_at"`
	Notes     string          `gorm:"column:notes"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Show *Show `gorm:"foreignKey:ShowID"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}
