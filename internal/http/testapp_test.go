package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"littlekicks/internal/config"
	"littlekicks/internal/http/handlers"
	applog "littlekicks/internal/log"
	"littlekicks/internal/repos"
	"littlekicks/internal/services"
)

// Sessions bound for the seeded demo accounts.
const (
	sellerSID = "sid-maria"
	buyerSID  = "sid-sam"
)

// newTestApp wires the real handlers against an in-memory database,
// mirroring the route table in cmd/littlekicks.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// one connection so the in-memory DB is shared
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	require.NoError(t, userRepo.BindSession(sellerSID, "u-maria"))
	require.NoError(t, userRepo.BindSession(buyerSID, "u-sam"))

	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, config.Config{}, authSvc)

	api := app.Group("/api")
	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)
	api.Post("/logout", authH.Logout)

	api.Post("/shoes", handlers.RequireUser(authSvc), deps.ShoeHandler.Create)
	api.Get("/shoes", deps.ShoeHandler.List)
	api.Get("/shoes/:id", deps.ShoeHandler.Detail)

	api.Post("/transactions", deps.TransactionHandler.Create)
	api.Get("/transactions/:id", deps.TransactionHandler.Get)
	api.Patch("/transactions/:id", deps.TransactionHandler.Update)

	api.Post("/ratings", handlers.RequireUser(authSvc), deps.RatingHandler.Create)

	api.Get("/notifications", handlers.RequireUser(authSvc), deps.NotificationHandler.List)
	api.Post("/notifications/:id/read", handlers.RequireUser(authSvc), deps.NotificationHandler.MarkRead)

	return app, db
}

func sidCookie(sid string) *http.Cookie {
	return &http.Cookie{Name: "sid", Value: sid}
}

// do sends a JSON request, optionally with a session cookie, and decodes the
// JSON response body into a map.
func do(t *testing.T, app *fiber.App, method, path, sid string, body any) (int, map[string]any) {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if sid != "" {
		req.AddCookie(sidCookie(sid))
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}
