package service

import (
	"context"
	"testing"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-secret"

func TestLogin(t *testing.T) {
	factory := newTestFactory(t)
	hash, err := HashPassword("abhi2024")
	require.NoError(t, err)
	adv := seedAdvisor(t, factory, hash)

	tokens := memory.NewSessionRepository()
	svc := NewAuthService(factory, tokens, testJwtSecret, &recordingLogger{})
	ctx := context.Background()

	tests := []struct {
		name     string
		req      dto.LoginRequest
		wantKind apperror.Kind
	}{
		{name: "missing password", req: dto.LoginRequest{Username: "sales.adv001"}, wantKind: apperror.KindValidation},
		{name: "unknown user", req: dto.LoginRequest{Username: "ghost", Password: "abhi2024"}, wantKind: apperror.KindUnauthorized},
		{name: "wrong password", req: dto.LoginRequest{Username: "sales.adv001", Password: "nope"}, wantKind: apperror.KindUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tt.req)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}

	res, err := svc.Login(ctx, &dto.LoginRequest{Username: "sales.adv001", Password: "abhi2024"})
	require.NoError(t, err)
	assert.Equal(t, adv.Id, res.User.Id)
	assert.Equal(t, "level-2", res.User.Level)

	parsed, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) { return []byte(testJwtSecret), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, adv.Id, claims["user_id"])

	_, live, err := tokens.Get(ctx, res.Token)
	require.NoError(t, err)
	assert.True(t, live)

	require.NoError(t, svc.Logout(ctx, res.Token))
	_, live, err = tokens.Get(ctx, res.Token)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestGetProfile(t *testing.T) {
	factory := newTestFactory(t)
	adv := seedAdvisor(t, factory, "hash")
	svc := NewUserService(factory)

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	profile, err := svc.GetProfile(context.Background(), adv.Id)
	require.NoError(t, err)
	assert.Equal(t, "Sales Advisor 001", profile.User.Name)
	require.Len(t, profile.Exemptions, 1)
	assert.Equal(t, "Health", profile.Exemptions[0].ProductType)
	assert.Equal(t, 500000.0, profile.Exemptions[0].ExemptionLimit)
}
