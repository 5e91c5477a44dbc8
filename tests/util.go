package testutil

import (
	"io"
	"log"
	"testing"

	"github.com/campuslite/campuslite/core"
	"github.com/campuslite/campuslite/core/student"
	logsvc "github.com/campuslite/campuslite/services/logger"
	inmemkv "github.com/campuslite/campuslite/storage/kv/inmem"
)

// NewStore returns a record store over a fresh in-memory backend, logging
// nowhere. The backend is returned too so tests can corrupt or inspect raw
// values.
func NewStore(t *testing.T) (*core.Store, *inmemkv.KV) {
	t.Helper()
	kv := inmemkv.New()
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0), false)
	return core.NewStore(kv, logger), kv
}

func CreateStudent(
	t *testing.T,
	svc *student.Service,
	name, studentID, email string,
	age int,
	course string,
) student.Student {
	t.Helper()
	std, err := svc.Add(student.NewStudent{
		Name:      name,
		StudentID: studentID,
		Email:     email,
		Age:       age,
		Course:    course,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

// TestConfig returns a config with the fixed admin pair used across tests.
func TestConfig() *core.Config {
	return &core.Config{
		AppName:       "Campuslite",
		Env:           "TEST",
		AdminUsername: "vicky",
		AdminPassword: "vickyvji",
	}
}
