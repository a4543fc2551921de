package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Redis keeps blobs in a Redis instance so several processes sharing the
// same profile see the same cart/session state.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(addr, prefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client, prefix: prefix}, nil
}

func (r *Redis) Load(key string) ([]byte, error) {
	data, err := r.client.Get(context.Background(), r.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (r *Redis) Save(key string, value []byte) error {
	return r.client.Set(context.Background(), r.prefix+key, value, 0).Err()
}

func (r *Redis) Delete(key string) error {
	return r.client.Del(context.Background(), r.prefix+key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
