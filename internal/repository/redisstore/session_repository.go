package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"abhi-advisor-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "auth_session:"

// SessionRepository stores auth sessions in redis so several API
// instances can share logins.
type SessionRepository struct {
	rdb *redis.Client
}

var _ store.TokenStore = (*SessionRepository)(nil)

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(ctx context.Context, session *store.AuthSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal auth session: %w", err)
	}
	return r.rdb.Set(ctx, keyPrefix+session.Token, payload, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*store.AuthSession, bool, error) {
	raw, err := r.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var session store.AuthSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, false, fmt.Errorf("unmarshal auth session: %w", err)
	}
	return &session, true, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, keyPrefix+token).Err()
}
