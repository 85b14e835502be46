package gorm

import "time"

type ConfigurationValue struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	ConfigKey   string    `gorm:"column:config_key;uniqueIndex"`
	ConfigValue string    `gorm:"column:config_value"`
	ValueType   string    `gorm:"column:value_type;default:number"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ConfigurationValue) TableName() string {
	return "configuration_values"
}
