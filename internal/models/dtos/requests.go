package dtos

import "time"

type CreateShowRequest struct {
	ClientID   string     `json:"client_id"`
	Title      string     `json:"title"`
	TotalPrice string     `json:"total_price"`
	ShootDate  *time.Time `json:"shoot_date,omitempty"`
}

type UpdateShowStatusRequest struct {
	Status string `json:"status"`
}

type CreateAssignmentRequest struct {
	UserID     string `json:"user_id"`
	ShowRoleID string `json:"show_role_id"`
}

type CreateClientRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type SetConfigRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CreateShowRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreatePaymentRequest struct {
	ShowID string     `json:"show_id"`
	Amount string     `json:"amount"`
	Method string     `json:"method"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
	Notes  string     `json:"notes,omitempty"`
}

type CreateEvaluationRequest struct {
	AssignmentID string `json:"assignment_id"`
	Score        int    `json:"score"`
	Comments     string `json:"comments,omitempty"`
}
