package backing

import (
	"context"
	"errors"
	"sort"

	"github.com/go-redis/redis/v8"
)

// Redis stores data in a Redis database. Key returns positions in a sorted
// snapshot of all keys, so the index-to-key mapping is stable as long as the
// key set does not change, but every call lists the whole keyspace; use with
// caution on large databases.
type Redis struct {
	client  *redis.Client
	context context.Context
}

// RedisArgs are the arguments for creating a new Redis backing.
type RedisArgs struct {
	Client  *redis.Client   // Required. The Redis client to use.
	Context context.Context // Optional. The context to use for Redis operations. If not provided, defaults to context.Background().
}

// NewRedis creates a new backing which stores data in Redis.
func NewRedis(args RedisArgs) (*Redis, error) {
	if args.Client == nil {
		return nil, errors.New("backing: redis client is required")
	}
	if args.Context == nil {
		args.Context = context.Background()
	}
	return &Redis{client: args.Client, context: args.Context}, nil
}

// Len returns the number of keys in the database.
func (r *Redis) Len() (int, error) {
	n, err := r.client.DBSize(r.context).Result()
	return int(n), err
}

// Key returns the key at the given index of the sorted keyspace.
func (r *Redis) Key(i int) (Key, bool, error) {
	keys, err := r.client.Keys(r.context, "*").Result()
	if err != nil {
		return "", false, err
	}
	sort.Strings(keys)
	if i < 0 || i >= len(keys) {
		return "", false, nil
	}
	return keys[i], true, nil
}

// Get returns the value for the given key.
func (r *Redis) Get(key Key) (string, bool, error) {
	value, err := r.client.Get(r.context, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set sets the value for the given key, with no expiry.
func (r *Redis) Set(key Key, value string) error {
	return r.client.Set(r.context, key, value, 0).Err()
}

// Del deletes the key-value pair for the given key.
func (r *Redis) Del(key Key) error {
	return r.client.Del(r.context, key).Err()
}
