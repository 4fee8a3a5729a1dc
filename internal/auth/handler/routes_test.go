package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanifradityo/auth-service/internal/auth/handler"
)

func TestRegisterRoutes(t *testing.T) {
	ta := newTestApp(t)

	// Every registered route must resolve; an unknown path must not.
	paths := []string{
		"/api/v1/signup",
		"/api/v1/signin",
		"/api/v1/refresh",
		"/api/v1/signout",
		"/api/v1/validate",
	}

	for _, path := range paths {
		req := httptest.NewRequest("POST", path, nil)
		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode, path)
	}

	req := httptest.NewRequest("POST", "/api/v1/unknown", nil)
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegisterRoutesStandalone(t *testing.T) {
	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewAuthHandler(nil))

	require.NotEmpty(t, app.GetRoutes())
}
