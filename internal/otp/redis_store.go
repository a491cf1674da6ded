package otp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
)

const keyPrefix = "otp:"

type RedisStore struct {
	client rueidis.Client
}

func NewRedisStore(client rueidis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Put(ctx context.Context, identifier string, record Record, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().
		Key(keyPrefix + identifier).
		Value(string(payload)).
		Ex(ttl).
		Build()

	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisStore) Get(ctx context.Context, identifier string) (Record, error) {
	cmd := r.client.B().Get().Key(keyPrefix + identifier).Build()
	result := r.client.Do(ctx, cmd)

	payload, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return Record{}, ErrRecordNotFound
		}
		return Record{}, err
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return Record{}, err
	}

	return record, nil
}

func (r *RedisStore) Delete(ctx context.Context, identifier string) error {
	cmd := r.client.B().Del().Key(keyPrefix + identifier).Build()
	return r.client.Do(ctx, cmd).Error()
}
