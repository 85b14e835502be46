package entities

import "github.com/shopspring/decimal"

// RevenueReportRow is one aggregate line of the revenue-by-role report.
type RevenueReportRow struct {
	AllocatedRoleName string          `db:"allocated_role_name" json:"allocated_role_name"`
	TotalAmount       decimal.Decimal `db:"total_amount" json:"total_amount"`
	RowCount          int64           `db:"row_count" json:"row_count"`
}
