package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"bloomfront/internal/config"
	"bloomfront/internal/content"
	"bloomfront/internal/controller"
	"bloomfront/internal/http/handlers"
	applog "bloomfront/internal/log"
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

	base, origin := content.Endpoint(cfg.PageHost, cfg.PageOrigin, cfg.APIBase)
	log.Printf("[content] base=%s origin=%s", base, origin)

	client := content.New(base, origin, cfg.FetchRPS)
	ctrl := controller.New(client)
	pages := &handlers.PageHandler{Ctrl: ctrl}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Что-то пошло не так. Попробуйте ещё раз.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Что-то пошло не так. Попробуйте ещё раз.")
			}
			return nil
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- Pages ----------
	app.Get("/", pages.Home)
	app.Get("/catalog", pages.Catalog)
	app.Get("/catalog/filter", pages.Filter)
	app.Post("/events/scroll", pages.Scroll)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Страница не найдена"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
