package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type AllocationRow struct {
	ID                 string          `json:"id"`
	AllocatedRoleName  string          `json:"allocated_role_name"`
	UserID             *string         `json:"user_id,omitempty"`
	ShowRoleID         *string         `json:"show_role_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	CalculationNotes   string          `json:"calculation_notes"`
	AllocationDatetime time.Time       `json:"allocation_datetime"`
}

type AssignmentDetail struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
}

type ShowDetail struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"client_id"`
	ClientName  string             `json:"client_name,omitempty"`
	Title       string             `json:"title"`
	Status      string             `json:"status"`
	TotalPrice  decimal.Decimal    `json:"total_price"`
	ShootDate   *time.Time         `json:"shoot_date,omitempty"`
	Assignments []AssignmentDetail `json:"assignments"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ShowSummary struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PagedResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type ClientDetail struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserDetail struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	StaffRole string `json:"staff_role"`
	IsActive  bool   `json:"is_active"`
}

type ShowRoleDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PaymentDetail struct {
	ID     string          `json:"id"`
	ShowID string          `json:"show_id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	PaidAt time.Time       `json:"paid_at"`
	Notes  string          `json:"notes,omitempty"`
}

type ShowPaymentsResponse struct {
	Items     []PaymentDetail `json:"items"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

type EvaluationDetail struct {
	ID           string    `json:"id"`
	ShowID       string    `json:"show_id"`
	AssignmentID string    `json:"assignment_id"`
	EvaluatorID  string    `json:"evaluator_id"`
	Score        int       `json:"score"`
	Comments     string    `json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
