package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslite/campuslite/core"
	"github.com/campuslite/campuslite/tests"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStore_roundTrip(t *testing.T) {
	store, _ := testutil.NewStore(t)

	want := []record{{"1", "Amit"}, {"2", "Leila"}, {"3", "Joe"}}
	if err := store.Write("records", want); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	var got []record
	store.Read("records", &got)
	assert.Equal(t, want, got, "round-trip must preserve order and content")
}

func TestStore_readMissingKey(t *testing.T) {
	store, _ := testutil.NewStore(t)

	var got []record
	store.Read("records", &got)
	assert.Empty(t, got)
}

func TestStore_readCorruptData(t *testing.T) {
	store, kv := testutil.NewStore(t)

	if err := kv.Set("records", []byte(`[{"id":"1","name":"Amit"},{"id":`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var got []record
	store.Read("records", &got)
	assert.Empty(t, got, "corrupt data must degrade to an empty collection")
}

func TestStore_writeReplacesPriorValue(t *testing.T) {
	store, _ := testutil.NewStore(t)

	if err := store.Write("records", []record{{"1", "Amit"}, {"2", "Leila"}}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := store.Write("records", []record{{"3", "Joe"}}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	var got []record
	store.Read("records", &got)
	assert.Equal(t, []record{{"3", "Joe"}}, got)
}

func TestStore_delete(t *testing.T) {
	store, _ := testutil.NewStore(t)

	if err := store.Write("records", []record{{"1", "Amit"}}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := store.Delete("records"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete("records"); err != nil {
		t.Errorf("Delete() on a missing key should be a no-op, got %v", err)
	}

	var got []record
	store.Read("records", &got)
	assert.Empty(t, got)
}

func TestValidationError_fieldMap(t *testing.T) {
	err := core.NewValidationError(
		assert.AnError,
		core.FieldError{Field: "name", Error: "this field is required"},
		core.FieldError{Field: "email", Error: "please enter a valid email"},
	)

	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("NewValidationError() returned %T, want *core.ValidationError", err)
	}
	assert.Equal(t, map[string]string{
		"name":  "this field is required",
		"email": "please enter a valid email",
	}, vErr.FieldMap())
}
