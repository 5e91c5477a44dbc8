package fee_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campuslite/campuslite/core"
	"github.com/campuslite/campuslite/core/fee"
	"github.com/campuslite/campuslite/tests"
)

func setup(t *testing.T) (*fee.Service, *core.Store) {
	t.Helper()
	store, _ := testutil.NewStore(t)
	return fee.NewService(store), store
}

func addFee(t *testing.T, svc *fee.Service, studentID string, amount float64, status fee.Status) fee.Record {
	t.Helper()
	rec, err := svc.Add(fee.NewRecord{
		StudentID:   studentID,
		Amount:      &amount,
		FeeType:     fee.TypeTuition,
		PaymentDate: "2024-01-01",
		Status:      status,
	})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	return rec
}

func TestService_add(t *testing.T) {
	svc, _ := setup(t)

	rec := addFee(t, svc, "S1", 100, fee.StatusPaid)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, "S1", rec.StudentID)
	assert.Equal(t, 100.0, rec.Amount)
	assert.Equal(t, fee.StatusPaid, rec.Status)

	other := addFee(t, svc, "S1", 50, fee.StatusPending)
	assert.NotEqual(t, rec.ID, other.ID)
	assert.Len(t, svc.ListAll(), 2, "the ledger is append-only")
}

func TestService_addValidation(t *testing.T) {
	svc, _ := setup(t)
	amount := 100.0
	negative := -1.0

	tests := []struct {
		name    string
		input   fee.NewRecord
		wantFld string
	}{
		{name: "missing student", input: fee.NewRecord{Amount: &amount}, wantFld: "studentId"},
		{name: "missing amount", input: fee.NewRecord{StudentID: "S1"}, wantFld: "amount"},
		{name: "negative amount", input: fee.NewRecord{StudentID: "S1", Amount: &negative}, wantFld: "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(tt.input)
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Add() error = %v, want *core.ValidationError", err)
			}
			assert.Contains(t, vErr.FieldMap(), tt.wantFld)
		})
	}
}

func TestService_addZeroAmount(t *testing.T) {
	svc, _ := setup(t)

	rec := addFee(t, svc, "S1", 0, fee.StatusPending)
	assert.Equal(t, 0.0, rec.Amount, "an explicit zero amount is a supplied amount")
}

func TestService_listAllNewestFirst(t *testing.T) {
	svc, store := setup(t)

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	seed := []fee.Record{
		{ID: "a", StudentID: "S1", Amount: 10, Status: fee.StatusPaid, CreatedAt: base},
		{ID: "b", StudentID: "S1", Amount: 20, Status: fee.StatusPaid, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", StudentID: "S2", Amount: 30, Status: fee.StatusPending, CreatedAt: base.Add(time.Hour)},
	}
	if err := store.Write("fees", seed); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	records := svc.ListAll()
	if assert.Len(t, records, 3) {
		assert.Equal(t, []string{"b", "c", "a"},
			[]string{records[0].ID, records[1].ID, records[2].ID})
	}
}

func TestService_aggregatesFor(t *testing.T) {
	svc, _ := setup(t)

	addFee(t, svc, "S1", 100, fee.StatusPaid)
	addFee(t, svc, "S1", 50, fee.StatusPending)
	addFee(t, svc, "S2", 75, fee.StatusOverdue)

	agg := svc.AggregatesFor("S1")
	assert.Equal(t, fee.Aggregates{Total: 150, Paid: 100, Pending: 50}, agg)

	agg = svc.AggregatesFor("S2")
	assert.Equal(t, fee.Aggregates{Total: 75, Paid: 0, Pending: 75}, agg, "overdue counts as not yet paid")

	agg = svc.AggregatesFor("S3")
	assert.Equal(t, fee.Aggregates{}, agg, "unknown students have empty aggregates")
}

func TestService_aggregateIdentityHolds(t *testing.T) {
	svc, _ := setup(t)

	amounts := []float64{10, 0, 33.5, 7.25, 100}
	statuses := []fee.Status{fee.StatusPaid, fee.StatusPending, fee.StatusOverdue, fee.StatusPaid, fee.StatusPending}
	for i := range amounts {
		addFee(t, svc, "S1", amounts[i], statuses[i])
	}

	agg := svc.AggregatesFor("S1")
	assert.Equal(t, agg.Total, agg.Paid+agg.Pending)
	assert.LessOrEqual(t, agg.Paid, agg.Total)
}
