package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abhi-advisor-be/internal/model"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/pkg/serverutils"
	"abhi-advisor-be/internal/repository/memory"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/internal/seed"
	"abhi-advisor-be/internal/service"
	"abhi-advisor-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "controller-test-secret"

type envelope struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	log := logger.NewNopLogger()
	factory := unitofwork.NewRepositoryFactory(db, log)

	catalog, err := seed.LoadCatalog()
	require.NoError(t, err)
	_, err = seed.NewSeeder(factory, catalog, log).Run(context.Background())
	require.NoError(t, err)

	tokens := memory.NewSessionRepository()
	recommendation := service.NewRecommendationService(nil, time.Second, log)
	chat := service.NewChatService(factory, recommendation, nil, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return serverutils.WriteError(ctx, log, err)
		},
	})
	app.Use(serverutils.ErrorHandlerMiddleware(log))

	NewHealthController(db).RegisterRoutes(app)
	api := app.Group("/api")
	NewAuthController(service.NewAuthService(factory, tokens, testSecret, log), serverutils.NewJwtMiddleware(testSecret, tokens)).RegisterRoutes(api)
	NewUserController(service.NewUserService(factory)).RegisterRoutes(api)
	NewCustomerController(service.NewCustomerService(factory, log)).RegisterRoutes(api)
	NewPolicyController(service.NewPolicyService(factory)).RegisterRoutes(api)
	NewChatController(chat, recommendation, serverutils.NewOptionalJwtMiddleware(testSecret, tokens)).RegisterRoutes(api)

	return &testApp{app: app, db: db}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, headers ...string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func (a *testApp) interactionCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&model.InteractionLog{}).Count(&n).Error)
	return n
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestChatEndpoints(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/chat/session", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, env = a.do(t, http.MethodPost, "/api/chat/session", map[string]interface{}{"user_id": "user-sales-adv001", "customer_id": "cust-101"})
	require.Equal(t, http.StatusOK, status)
	session := decode[map[string]interface{}](t, env.Data)
	sessionId := session["id"].(string)
	assert.Equal(t, true, session["is_active"])

	status, _ = a.do(t, http.MethodPost, "/api/chat/message", map[string]interface{}{
		"chat_session_id": sessionId,
		"user_id":         "user-sales-adv001",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Zero(t, a.interactionCount(t))

	status, env = a.do(t, http.MethodPost, "/api/chat/message", map[string]interface{}{
		"message":         "customer wants 15 lakh health cover",
		"customer_id":     "cust-101",
		"chat_session_id": sessionId,
		"user_id":         "user-sales-adv001",
	})
	require.Equal(t, http.StatusOK, status)
	reply := decode[map[string]string](t, env.Data)
	assert.Equal(t, "fallback", reply["source"])
	assert.Contains(t, reply["response"], "Underwriting Alert for Sales Advisor 001")
	assert.NotEmpty(t, reply["timestamp"])
	assert.EqualValues(t, 1, a.interactionCount(t))

	status, env = a.do(t, http.MethodGet, "/api/chat/session/"+sessionId+"/interactions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]interface{}](t, env.Data), 1)

	status, env = a.do(t, http.MethodPut, "/api/chat/session/"+sessionId, map[string]interface{}{"is_active": false})
	require.Equal(t, http.StatusOK, status)
	updated := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, false, updated["is_active"])
	assert.Equal(t, "cust-101", updated["customer_id"])

	status, _ = a.do(t, http.MethodPut, "/api/chat/session/missing", map[string]interface{}{"is_active": false})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestChatMessageTakesAdvisorFromToken(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "sales.adv001", "password": "abhi2024"})
	require.Equal(t, http.StatusOK, status)
	login := decode[map[string]interface{}](t, env.Data)
	token := login["token"].(string)
	auth := []string{"Authorization", "Bearer " + token}

	status, env = a.do(t, http.MethodPost, "/api/chat/session", map[string]interface{}{}, auth...)
	require.Equal(t, http.StatusOK, status)
	sessionId := decode[map[string]interface{}](t, env.Data)["id"].(string)

	status, env = a.do(t, http.MethodPost, "/api/chat/message", map[string]interface{}{
		"message":         "hello",
		"chat_session_id": sessionId,
	}, auth...)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, decode[map[string]string](t, env.Data)["response"], "Hello Sales Advisor 001!")
	assert.EqualValues(t, 1, a.interactionCount(t))

	status, _ = a.do(t, http.MethodPost, "/api/auth/logout", nil, auth...)
	require.Equal(t, http.StatusOK, status)

	status, _ = a.do(t, http.MethodPost, "/api/chat/message", map[string]interface{}{"message": "hello"}, auth...)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginFailures(t *testing.T) {
	a := newTestApp(t)

	status, _ := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "sales.adv001"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := a.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "sales.adv001", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestCustomerEndpoints(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]interface{}](t, env.Data), 107)

	status, _ = a.do(t, http.MethodGet, "/api/customers/search?q=", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = a.do(t, http.MethodGet, "/api/customers/search?q=sunita", nil)
	require.Equal(t, http.StatusOK, status)
	found := decode[[]map[string]interface{}](t, env.Data)
	assert.NotEmpty(t, found)
	assert.LessOrEqual(t, len(found), 10)

	status, env = a.do(t, http.MethodGet, "/api/customers/cust-101", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ramesh Patel", decode[map[string]interface{}](t, env.Data)["name"])

	status, _ = a.do(t, http.MethodGet, "/api/customers/cust-404", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = a.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "Bad", "age": 0, "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Errors, "age")
	assert.Contains(t, env.Errors, "email")

	status, _ = a.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"id": "cust-101", "name": "Dup", "age": 40})
	assert.Equal(t, http.StatusConflict, status)

	status, env = a.do(t, http.MethodPost, "/api/customers", map[string]interface{}{"name": "New Customer", "age": 29, "risk_appetite": "High"})
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, decode[map[string]interface{}](t, env.Data)["id"])
}

func TestPolicyAndProfileEndpoints(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodGet, "/api/policies", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]interface{}](t, env.Data), 5)

	status, env = a.do(t, http.MethodGet, "/api/policies/type/Term", nil)
	require.Equal(t, http.StatusOK, status)
	term := decode[[]map[string]interface{}](t, env.Data)
	require.Len(t, term, 1)
	assert.Equal(t, "Protect@Ease", term[0]["name"])

	status, env = a.do(t, http.MethodGet, "/api/competitor-policies?provider=HDFC%20Life", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]interface{}](t, env.Data), 1)

	status, env = a.do(t, http.MethodGet, "/api/users/user-sales-adv001/profile", nil)
	require.Equal(t, http.StatusOK, status)
	profile := decode[map[string]json.RawMessage](t, env.Data)
	assert.NotContains(t, string(profile["user"]), "password")
	assert.Len(t, decode[[]map[string]interface{}](t, profile["exemptions"]), 3)
}

func TestRecommendPolicyEndpoint(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/api/chat/recommend-policy", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Customer data is required", env.Message)

	status, env = a.do(t, http.MethodPost, "/api/chat/recommend-policy", map[string]interface{}{
		"customer": map[string]interface{}{"age": 30, "risk_appetite": "Low", "income_bracket": "5-10L", "dependents_count": 1},
	})
	require.Equal(t, http.StatusOK, status)
	res := decode[map[string][]map[string]interface{}](t, env.Data)
	assert.Len(t, res["recommendations"], 3)
}
