package store

import (
	"context"
	"time"
)

// AuthSession is the server-side record behind an issued access token.
type AuthSession struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenStore keeps track of live access tokens so logout can revoke them
// before the JWT itself expires. Implementations must be safe for concurrent use.
type TokenStore interface {
	Save(ctx context.Context, session *AuthSession) error
	Get(ctx context.Context, token string) (*AuthSession, bool, error)
	Revoke(ctx context.Context, token string) error
}
