package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session records in Redis as JSON values. Each record is a
// single key, so reads are always complete snapshots and a concurrent write
// can never expose a torn record.
type RedisStore struct {
	client   *redis.Client
	staffTTL time.Duration
	kioskTTL time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, staffTTL, kioskTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, staffTTL: staffTTL, kioskTTL: kioskTTL}
}

func staffKey(sessionID string) string { return "session:staff:" + sessionID }
func kioskKey(sessionID string) string { return "session:kiosk:" + sessionID }

func (s *RedisStore) ReadStaff(ctx context.Context, sessionID string) (*StaffSession, error) {
	payload, err := s.client.Get(ctx, staffKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read staff session: %w", err)
	}
	return decodeStaff(payload)
}

func (s *RedisStore) WriteStaff(ctx context.Context, sessionID string, rec *StaffSession) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode staff session: %w", err)
	}
	return s.client.Set(ctx, staffKey(sessionID), payload, s.staffTTL).Err()
}

func (s *RedisStore) DeleteStaff(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, staffKey(sessionID)).Err()
}

func (s *RedisStore) ReadKiosk(ctx context.Context, sessionID string) (*KioskSession, error) {
	payload, err := s.client.Get(ctx, kioskKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kiosk session: %w", err)
	}
	return decodeKiosk(payload)
}

func (s *RedisStore) WriteKiosk(ctx context.Context, sessionID string, rec *KioskSession) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode kiosk session: %w", err)
	}
	return s.client.Set(ctx, kioskKey(sessionID), payload, s.kioskTTL).Err()
}

func (s *RedisStore) DeleteKiosk(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, kioskKey(sessionID)).Err()
}
