package gorm

import "time"

// Evaluation is a staff review of one assignment after a show wraps.
type Evaluation struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	ShowID       string    `gorm:"column:show_id;type:uuid;index"`
	AssignmentID string    `gorm:"column:assignment_id;type:uuid;uniqueIndex:idx_assignment_evaluator"`
	EvaluatorID  string    `gorm:"column:evaluator_id;type:uuid;uniqueIndex:idx_assignment_evaluator"`
	Score        int       `gorm:"column:score"`
	Comments     string    `gorm:"column:comments"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Assignment *ShowAssignment `gorm:"foreignKey:AssignmentID"`
}

// TableName specifies the table name for GORM
func (Evaluation) TableName() string {
	return "staff_evaluations"
}
