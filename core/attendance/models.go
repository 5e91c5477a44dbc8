package attendance

import (
	"github.com/campuslite/campuslite/core"
)

// Status of a student on a given day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Record marks one student's status on one calendar day. The (studentId, date)
// pair is the natural key; there is never more than one record per pair.
type Record struct {
	StudentID string `json:"studentId"`
	Date      string `json:"date"` // ISO 8601 calendar date
	Status    Status `json:"status"`
}

// Mark contains information needed to mark attendance.
type Mark struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    Status `json:"status" validate:"required,oneof=present absent late"`
}

func (m *Mark) Validate() error {
	m.StudentID = core.CleanString(m.StudentID)
	m.Date = core.CleanString(m.Date)
	return core.TranslateValidationError(core.Validate.Struct(m))
}
