package inmemkv

import (
	"sync"

	"github.com/campuslite/campuslite/core"
)

// KV is a map-backed key-value store. It backs tests and throwaway sessions;
// nothing survives the process.
type KV struct {
	mutex sync.RWMutex
	data  map[string][]byte
}

var _ core.KeyValue = (*KV)(nil)

func New() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (kv *KV) Get(key string) ([]byte, error) {
	kv.mutex.RLock()
	defer kv.mutex.RUnlock()

	value, ok := kv.data[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (kv *KV) Set(key string, value []byte) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	kv.data[key] = cp
	return nil
}

func (kv *KV) Delete(key string) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()

	delete(kv.data, key)
	return nil
}
