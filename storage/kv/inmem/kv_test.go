package inmemkv_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslite/campuslite/core"
	inmemkv "github.com/campuslite/campuslite/storage/kv/inmem"
)

func TestKV_setGetDelete(t *testing.T) {
	kv := inmemkv.New()

	if _, err := kv.Get("fees"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Fatalf("Get() error = %v, want %v", err, core.ErrKeyNotFound)
	}

	if err := kv.Set("fees", []byte(`[]`)); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := kv.Get("fees")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	assert.Equal(t, []byte(`[]`), got)

	if err := kv.Delete("fees"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := kv.Get("fees"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Fatalf("Get() after Delete() error = %v, want %v", err, core.ErrKeyNotFound)
	}
}

func TestKV_valuesAreCopied(t *testing.T) {
	kv := inmemkv.New()

	value := []byte(`[{"id":"1"}]`)
	if err := kv.Set("students", value); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	value[1] = 'X' // mutating the caller's slice must not reach the store

	got, err := kv.Get("students")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)

	got[1] = 'Y' // and mutating a read result must not either
	again, _ := kv.Get("students")
	assert.Equal(t, []byte(`[{"id":"1"}]`), again)
}
