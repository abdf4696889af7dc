package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"littlekicks/internal/config"
	"littlekicks/internal/http/handlers"
	applog "littlekicks/internal/log"
	"littlekicks/internal/repos"
	"littlekicks/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates and AuthContext)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg, authSvc)

	// Public pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/shoe/:id", deps.PageHandler.Detail)

	// Auth (login throttled)
	api := app.Group("/api")
	api.Post("/register", authH.Register)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	}), authH.Login)
	api.Post("/logout", authH.Logout)

	// Listings
	api.Post("/shoes", handlers.RequireUser(authSvc), deps.ShoeHandler.Create)
	api.Get("/shoes", deps.ShoeHandler.List)
	api.Get("/shoes/:id", deps.ShoeHandler.Detail)

	// Transactions (guests may create and confirm delivery)
	api.Post("/transactions", deps.TransactionHandler.Create)
	api.Get("/transactions/:id", deps.TransactionHandler.Get)
	api.Patch("/transactions/:id", deps.TransactionHandler.Update)

	// Ratings
	api.Post("/ratings", handlers.RequireUser(authSvc), deps.RatingHandler.Create)

	// Notifications
	api.Get("/notifications", handlers.RequireUser(authSvc), deps.NotificationHandler.List)
	api.Post("/notifications/:id/read", handlers.RequireUser(authSvc), deps.NotificationHandler.MarkRead)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
