package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// Friendly error surface: internal failures never leak details to the caller.
func TestErrorSurface_NoInternalLeakage(t *testing.T) {
	app, db := newTestApp(t)

	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	require.Contains(t, s, "Something went wrong")
	require.NotContains(t, s, "db timeout")
	require.NotContains(t, s, "secret")

	// Same surface on a real path when the database goes away.
	require.NoError(t, db.Close())
	code, out := do(t, app, "GET", "/api/shoes/shoe-velcro-01", "", nil)
	require.Equal(t, fiber.StatusInternalServerError, code)
	require.Equal(t, "Something went wrong. Please try again.", out["error"])
	require.NotContains(t, out["error"], "sql")
}

func TestLogin_BadPasswordAnswers401(t *testing.T) {
	app, _ := newTestApp(t)

	code, out := do(t, app, "POST", "/api/login", "", map[string]any{
		"email": "maria@littlekicks.test", "password": "wrongpass!",
	})
	require.Equal(t, fiber.StatusUnauthorized, code)
	require.Equal(t, "invalid email or password", out["error"])

	code, out = do(t, app, "POST", "/api/login", "", map[string]any{
		"email": "maria@littlekicks.test", "password": "Passw0rd!",
	})
	require.Equal(t, fiber.StatusOK, code)
	require.Equal(t, "Maria", out["name"])
}

// Malformed JSON bodies answer 400 across the write endpoints.
func TestBadBodiesAnswer400(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/register", "/api/transactions", "/api/ratings"} {
		req := httptest.NewRequest("POST", path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		if path == "/api/ratings" {
			req.AddCookie(sidCookie(buyerSID))
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}
