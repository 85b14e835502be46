package entities

// ConfigValueRow is the sqlx projection of one configuration_values row.
type ConfigValueRow struct {
	ConfigKey   string `db:"config_key"`
	ConfigValue string `db:"config_value"`
	ValueType   string `db:"value_type"`
}
