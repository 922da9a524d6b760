package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"app/config"
	"app/middleware"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func newAuthTestApp() *fiber.App {
	config.AppConfig.JWTSecret = "test-secret"
	app := fiber.New()
	app.Post("/api/v1/auth/login", HandleLogin)
	app.Put("/api/v1/profile", middleware.JWTMiddleware, HandleUpdateProfile)
	return app
}

func loginAndGetToken(t *testing.T, app *fiber.App, body string) string {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var payload struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload.Token)
	return payload.Token
}

func TestLoginDemoUser(t *testing.T) {
	app := newAuthTestApp()

	token := loginAndGetToken(t, app, `{"email": "demo@dmart.com", "password": "demo123"}`)

	claims := &models.JwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "demo_user", claims.UserID)
	assert.Equal(t, "Demo User", claims.Username)
}

func TestLoginRejectsBadDemoPassword(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email": "demo@dmart.com", "password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email": "", "password": ""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestProfileRequiresJWT(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("PUT", "/api/v1/profile",
		strings.NewReader(`{"username": "Priya", "email": "priya@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestProfileUpdateWithJWT(t *testing.T) {
	app := newAuthTestApp()
	token := loginAndGetToken(t, app, `{"email": "priya@example.com", "password": "secret"}`)

	req := httptest.NewRequest("PUT", "/api/v1/profile",
		strings.NewReader(`{"username": "Priya", "email": "priya.shah@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var payload struct {
		Status   string `json:"status"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "success", payload.Status)
	assert.Equal(t, "Priya", payload.Username)
	assert.Equal(t, "priya.shah@example.com", payload.Email)
}
