package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstays/stays-api/internal/api"
	"github.com/openstays/stays-api/internal/config"
	"github.com/openstays/stays-api/internal/platform/memory"
	"github.com/openstays/stays-api/internal/service"
	"github.com/openstays/stays-api/internal/service/auth"
)

func newTestHandler(t *testing.T) (*api.AuthHandler, *service.Facade) {
	t.Helper()

	hasher := auth.NewBcryptHasher(4)
	facade := service.NewFacade(
		memory.NewUserStore(),
		memory.NewPlaceStore(),
		memory.NewReviewStore(),
		memory.NewAmenityStore(),
		hasher,
		nil,
		nil,
	)

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	})
	require.NoError(t, err)

	return api.NewAuthHandler(facade, jwtService, hasher, time.Hour), facade
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterSuccess(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "longenoughpw",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, resp.UserID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := api.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "longenoughpw",
	}
	rec := postJSON(t, handler.Register, "/api/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, "/api/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterRejectsInvalidPayload(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "not-an-email",
		Password:  "longenoughpw",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRoundTrip(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "longenoughpw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
		Email:    "ada@example.com",
		Password: "longenoughpw",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "longenoughpw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmailSameAsWrongPassword(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
