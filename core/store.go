package core

import (
	"encoding/json"
	"errors"
	"reflect"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrKeyNotFound is returned by KeyValue.Get when a key has no value.
	ErrKeyNotFound = errors.New("key not found")

	errInvalidInput = errors.New("invalid input")
)

type (
	// KeyValue is any storage backend that can persist raw values under string
	// keys. Implementations must be safe for use from a single logical thread
	// of control; no transactional guarantees are required across keys.
	KeyValue interface {
		Get(key string) ([]byte, error)
		Set(key string, value []byte) error
		Delete(key string) error
	}

	// Store persists named collections of JSON records on a KeyValue backend.
	// It is the only owner of the serialized representation; repositories and
	// ledgers go through it for every read and write.
	Store struct {
		kv  KeyValue
		log Logger
	}
)

func NewStore(kv KeyValue, log Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Read loads the collection stored under key into dest (a pointer). A missing
// key leaves dest at its zero value; a corrupt payload or a failing backend is
// logged and likewise yields the zero value. Read never fails the caller.
func (s *Store) Read(key string, dest interface{}) {
	data, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Error("storage: reading "+key+" failed", err)
		}
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Error("storage: corrupt data under "+key, err)
		// Unmarshal may have partially filled dest before failing
		zero(dest)
	}
}

// Write serializes v and replaces the prior value under key in full.
func (s *Store) Write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return pkgerrors.Wrapf(err, "storage: serializing %s", key)
	}
	if err := s.kv.Set(key, data); err != nil {
		return pkgerrors.Wrapf(err, "storage: writing %s", key)
	}
	return nil
}

// Delete removes the value under key; deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	if err := s.kv.Delete(key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return pkgerrors.Wrapf(err, "storage: deleting %s", key)
	}
	return nil
}

func zero(dest interface{}) {
	if v := reflect.ValueOf(dest); v.Kind() == reflect.Ptr && !v.IsNil() {
		v.Elem().Set(reflect.Zero(v.Elem().Type()))
	}
}
