package fee

import (
	"time"

	"github.com/campuslite/campuslite/core"
)

// Type of fee being charged.
type Type string

const (
	TypeTuition Type = "tuition"
	TypeLibrary Type = "library"
	TypeLab     Type = "lab"
	TypeSports  Type = "sports"
	TypeOther   Type = "other"
)

// Status of a fee payment.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
)

// Record is one fee transaction. Records are append-only: they are never
// updated or deleted once written.
type Record struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	Amount      float64   `json:"amount"`
	FeeType     Type      `json:"feeType"`
	PaymentDate string    `json:"paymentDate"` // ISO 8601 calendar date
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
}

// NewRecord contains information needed to append a fee transaction.
// Only the student and the amount are checked here; enum membership is the
// caller's responsibility.
type NewRecord struct {
	StudentID   string   `json:"studentId" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
	FeeType     Type     `json:"feeType"`
	PaymentDate string   `json:"paymentDate"`
	Status      Status   `json:"status"`
}

func (nr *NewRecord) Validate() error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.PaymentDate = core.CleanString(nr.PaymentDate)
	return core.TranslateValidationError(core.Validate.Struct(nr))
}

// Aggregates are the derived per-student fee totals. They are computed, never
// stored; Total = Paid + Pending always holds.
type Aggregates struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}
