package rediskv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/campuslite/campuslite/core"
)

// KV binds the record store to a redis instance, for hosts whose persistent
// key-value facility is redis rather than the local filesystem. Values are
// stored without expiry.
type KV struct {
	client *redis.Client
}

var _ core.KeyValue = (*KV)(nil)

// New connects to redis with short timeouts.
func New(addr string) *KV {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &KV{client: client}
}

// Healthy verifies redis connectivity.
func (kv *KV) Healthy(ctx context.Context) bool {
	return kv.client.Ping(ctx).Err() == nil
}

func (kv *KV) Get(key string) ([]byte, error) {
	data, err := kv.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "rediskv: reading %s", key)
	}
	return data, nil
}

func (kv *KV) Set(key string, value []byte) error {
	if err := kv.client.Set(context.Background(), key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "rediskv: writing %s", key)
	}
	return nil
}

func (kv *KV) Delete(key string) error {
	if err := kv.client.Del(context.Background(), key).Err(); err != nil {
		return errors.Wrapf(err, "rediskv: deleting %s", key)
	}
	return nil
}

// Close releases the underlying connection.
func (kv *KV) Close() error {
	return kv.client.Close()
}
