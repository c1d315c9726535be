package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/repository/memory"
	"abhi-advisor-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/", func(*fiber.Ctx) error { return err })
	return app
}

func TestErrorHandlerMapsKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperror.Validation("bad input"), http.StatusBadRequest, "bad input"},
		{"not found", apperror.NotFound("Customer not found"), http.StatusNotFound, "Customer not found"},
		{"unauthorized", apperror.Unauthorized("Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{"conflict", apperror.Conflict("customer %s already exists", "c1"), http.StatusConflict, "customer c1 already exists"},
		{"internal hides cause", apperror.Internal("db", errors.New("disk full")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		{"fiber error", fiber.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot, "teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := errorApp(tt.err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body Response[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.False(t, body.Success)
		})
	}
}

func TestValidateRequestUsesJSONNames(t *testing.T) {
	type req struct {
		Message string `json:"message" validate:"required"`
		Email   string `json:"email" validate:"omitempty,email"`
	}

	err := ValidateRequest(req{Email: "nope"})
	require.Error(t, err)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "is required", appErr.Fields["message"])
	assert.Equal(t, "must be a valid email", appErr.Fields["email"])

	assert.NoError(t, ValidateRequest(req{Message: "hi"}))
}

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    "sales_advisor",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJwtMiddleware(t *testing.T) {
	const secret = "s3cret"
	tokens := memory.NewSessionRepository()
	live := signToken(t, secret, "adv-1")
	require.NoError(t, tokens.Save(context.Background(), &store.AuthSession{
		Token:     live,
		UserID:    "adv-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	unknown := signToken(t, secret, "adv-2")
	forged := signToken(t, "other", "adv-1")

	app := fiber.New()
	app.Get("/strict", NewJwtMiddleware(secret, tokens), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUserID(c))
	})
	app.Get("/optional", NewOptionalJwtMiddleware(secret, tokens), func(c *fiber.Ctx) error {
		return c.SendString("user=" + CurrentUserID(c))
	})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"strict without token", "/strict", "", http.StatusUnauthorized},
		{"strict live token", "/strict", live, http.StatusOK},
		{"strict revoked or unknown token", "/strict", unknown, http.StatusUnauthorized},
		{"strict forged signature", "/strict", forged, http.StatusUnauthorized},
		{"optional anonymous", "/optional", "", http.StatusOK},
		{"optional live token", "/optional", live, http.StatusOK},
		{"optional forged token", "/optional", forged, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
