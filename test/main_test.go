package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestChatRoute(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/chat", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})

	req := httptest.NewRequest("POST", "/api/v1/chat", nil)

	resp, _ := app.Test(req, 1)

	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRouteNotFound(t *testing.T) {
	app := fiber.New()
	req := httptest.NewRequest("GET", "/api/v1/does-not-exist", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, 404, resp.StatusCode)
}
