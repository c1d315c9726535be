package memory

import (
	"context"
	"time"

	"abhi-advisor-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ store.TokenStore = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	// Entries carry their own expiry; purge expired items every 10 minutes
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(_ context.Context, session *store.AuthSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	r.cache.Set(session.Token, session, ttl)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, token string) (*store.AuthSession, bool, error) {
	if x, found := r.cache.Get(token); found {
		return x.(*store.AuthSession), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Revoke(_ context.Context, token string) error {
	r.cache.Delete(token)
	return nil
}
