package gorm

import "time"

type Client struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	FullName  string    `gorm:"column:full_name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Phone     string    `gorm:"column:phone"`
	Notes     string    `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Shows []Show `gorm:"foreignKey:ClientID"`
}

// TableName specifies the table name for GORM
func (Client) TableName() string {
	return "clients"
}
