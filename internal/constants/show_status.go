package constants

import (
	"database/sql/driver"
	"fmt"
)

// ShowStatus mirrors the Postgres ENUM 'show_status'
type ShowStatus string

const (
	StatusInquiry   ShowStatus = "INQUIRY"
	StatusBooked    ShowStatus = "BOOKED"
	StatusShot      ShowStatus = "SHOT"
	StatusEditing   ShowStatus = "EDITING"
	StatusDelivered ShowStatus = "DELIVERED"
	StatusCompleted ShowStatus = "COMPLETED"
	StatusCancelled ShowStatus = "CANCELLED"
)

var allShowStatuses = []ShowStatus{
	StatusInquiry,
	StatusBooked,
	StatusShot,
	StatusEditing,
	StatusDelivered,
	StatusCompleted,
	StatusCancelled,
}

func (s ShowStatus) String() string { return string(s) }

// IsValid reports whether s is one of the known statuses.
func (s ShowStatus) IsValid() bool {
	for _, v := range allShowStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether reaching s triggers a revenue recalculation.
func (s ShowStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCompleted
}

// Scan implements the sql.Scanner interface
func (s *ShowStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = ShowStatus(v)
	case []byte:
		*s = ShowStatus(v)
	default:
		return fmt.Errorf("ShowStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s ShowStatus) Value() (driver.Value, error) { return string(s), nil }
