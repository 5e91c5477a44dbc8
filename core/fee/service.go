package fee

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/campuslite/campuslite/core"
)

const collection = "fees"

// Service is an append-only ledger over the "fees" collection.
type Service struct {
	store *core.Store
}

func NewService(store *core.Store) *Service {
	return &Service{store: store}
}

// ListAll returns every fee record, newest first.
func (svc *Service) ListAll() []Record {
	records := svc.list()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records
}

// ListFor returns the student's fee records in insertion order.
func (svc *Service) ListFor(studentID string) []Record {
	var records []Record
	for _, r := range svc.list() {
		if r.StudentID == studentID {
			records = append(records, r)
		}
	}
	return records
}

// Add validates the input, assigns a generated id and creation timestamp and
// appends the record.
func (svc *Service) Add(nr NewRecord) (Record, error) {
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:          uuid.NewString(),
		StudentID:   nr.StudentID,
		Amount:      *nr.Amount,
		FeeType:     nr.FeeType,
		PaymentDate: nr.PaymentDate,
		Status:      nr.Status,
		CreatedAt:   time.Now().UTC(),
	}
	records := append(svc.list(), rec)
	if err := svc.store.Write(collection, records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// AggregatesFor computes the student's fee totals from the ledger.
func (svc *Service) AggregatesFor(studentID string) Aggregates {
	var agg Aggregates
	for _, r := range svc.ListFor(studentID) {
		agg.Total += r.Amount
		if r.Status == StatusPaid {
			agg.Paid += r.Amount
		}
	}
	agg.Pending = agg.Total - agg.Paid
	return agg
}

func (svc *Service) list() []Record {
	var records []Record
	svc.store.Read(collection, &records)
	return records
}
