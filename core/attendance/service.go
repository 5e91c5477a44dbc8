package attendance

import (
	"github.com/campuslite/campuslite/core"
)

const collection = "attendance"

// Service is an upsert-only ledger over the "attendance" collection. Marks for
// a (studentId, date) pair replace any prior mark for that pair; marks for
// other days are never touched. No deletion is exposed.
type Service struct {
	store *core.Store
}

func NewService(store *core.Store) *Service {
	return &Service{store: store}
}

// ListAll returns every attendance record across all students and days.
func (svc *Service) ListAll() []Record {
	var records []Record
	svc.store.Read(collection, &records)
	return records
}

// Mark upserts the status for the (studentId, date) pair: the last write for
// a given day wins, prior days keep their history.
func (svc *Service) Mark(m Mark) error {
	if err := m.Validate(); err != nil {
		return err
	}
	rec := Record{StudentID: m.StudentID, Date: m.Date, Status: m.Status}

	records := svc.ListAll()
	replaced := false
	for i, r := range records {
		if r.StudentID == rec.StudentID && r.Date == rec.Date {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return svc.store.Write(collection, records)
}

// StatusOf reports the recorded status for the pair; ok is false when the day
// was never marked for that student.
func (svc *Service) StatusOf(studentID, date string) (status Status, ok bool) {
	for _, r := range svc.ListAll() {
		if r.StudentID == studentID && r.Date == date {
			return r.Status, true
		}
	}
	return "", false
}
