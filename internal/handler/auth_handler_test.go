package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"resume-builder/internal/domain"
	"resume-builder/internal/middleware"
	"resume-builder/internal/port"
	"resume-builder/internal/service"
)

type memUserStore struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: map[string]*domain.User{}, byID: map[string]*domain.User{}}
}

func (m *memUserStore) CreateUser(_ context.Context, u *domain.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return port.ErrEmailTaken
	}
	cp := *u
	m.byEmail[u.Email] = &cp
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, port.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserStore) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, port.ErrUserNotFound
	}
	return u, nil
}

func authApp() (*fiber.App, middleware.JWTConfig) {
	jwtCfg := middleware.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "resume-builder",
		ExpiresIn: time.Hour,
	}
	auth := service.NewAuthService(newMemUserStore(), bcrypt.MinCost, jwtCfg)
	h := NewAuthHandler(auth)

	app := fiber.New()
	h.Register(app)
	app.Get("/auth/me", middleware.JWTMiddleware(jwtCfg), h.Me)
	return app, jwtCfg
}

func TestSignupEndpoint(t *testing.T) {
	app, _ := authApp()

	body := `{"name": "Ada", "email": "ada@example.com", "password": "secret1"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var token domain.Token
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	t.Run("duplicate email yields 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := authApp()

	signup := `{"name": "Ada", "email": "ada@example.com", "password": "secret1"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(signup))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email": "ada@example.com", "password": "secret1"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password yields 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email": "ada@example.com", "password": "nope"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestMeEndpoint(t *testing.T) {
	app, _ := authApp()

	signup := `{"name": "Ada", "email": "ada@example.com", "password": "secret1"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(signup))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var token domain.Token
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))

	t.Run("with token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var user domain.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("without token yields 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/auth/me", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
