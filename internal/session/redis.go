package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/al-qunnut/TicketFlow/internal/models"
)

// RedisStore keeps sessions in Redis so they survive process restarts. Each
// record is a JSON value under session:<id> with the session TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(id string) string { return "session:" + id }

func (s *RedisStore) Create(ctx context.Context, user models.Identity) (string, error) {
	id := uuid.NewString()
	rec := Record{
		Token:     uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := s.put(ctx, id, &rec); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) put(ctx context.Context, id string, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		return s.Destroy(ctx, id)
	}
	return s.client.Set(ctx, key(id), data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	data, err := s.client.Get(ctx, key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, key(id)).Err()
}

func (s *RedisStore) SetFlash(ctx context.Context, id string, f Flash) error {
	rec, err := s.Get(ctx, id)
	if err != nil || rec == nil {
		return err
	}
	rec.Flash = &f
	return s.put(ctx, id, rec)
}

func (s *RedisStore) PopFlash(ctx context.Context, id string) (*Flash, error) {
	rec, err := s.Get(ctx, id)
	if err != nil || rec == nil || rec.Flash == nil {
		return nil, err
	}
	f := *rec.Flash
	rec.Flash = nil
	if err := s.put(ctx, id, rec); err != nil {
		return nil, err
	}
	return &f, nil
}
