package constants

const (
	GetStatusByApiKey = `
	SELECT id, status, staff_id, staff_role FROM api_keys WHERE id = $1
	`

	GetStudioConfigs = `
	SELECT config_key, config_value, value_type FROM configuration_values
	`

	UpsertStudioConfig = `
	INSERT INTO configuration_values (config_key, config_value, value_type, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (config_key)
	DO UPDATE SET config_value = EXCLUDED.config_value,
	              value_type   = EXCLUDED.value_type,
	              updated_at   = NOW()
	`

	RevenueByRole = `
	SELECT allocated_role_name,
	       SUM(amount)::numeric(14,2) AS total_amount,
	       COUNT(*)                   AS row_count
	FROM revenue_allocations
	WHERE allocation_datetime >= $1 AND allocation_datetime < $2
	GROUP BY allocated_role_name
	ORDER BY total_amount DESC
	`

	PaymentsTotalByShow = `
	SELECT COALESCE(SUM(amount), 0)::numeric(14,2) FROM payments WHERE show_id = $1
	`
)
