package filekv

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/campuslite/campuslite/core"
)

// KV persists each key as one JSON file in a directory. It is the default
// durable binding on hosts with a filesystem; writes go through a temp file
// and a rename so readers never observe a partial value.
type KV struct {
	dir string
}

var _ core.KeyValue = (*KV)(nil)

func Open(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "filekv: creating %s", dir)
	}
	return &KV{dir: dir}, nil
}

func (kv *KV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(kv.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "filekv: reading %s", key)
	}
	return data, nil
}

func (kv *KV) Set(key string, value []byte) error {
	path := kv.path(key)
	tmp, err := os.CreateTemp(kv.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "filekv: writing %s", key)
	}
	if _, err = tmp.Write(value); err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "filekv: writing %s", key)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "filekv: writing %s", key)
	}
	return nil
}

func (kv *KV) Delete(key string) error {
	if err := os.Remove(kv.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "filekv: deleting %s", key)
	}
	return nil
}

func (kv *KV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}
