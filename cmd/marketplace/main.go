package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"marketplace/internal/config"
	"marketplace/internal/http/handlers"
	"marketplace/internal/imagesync"
	applog "marketplace/internal/log"
	"marketplace/internal/repos"
	"marketplace/web"
)

func main() {
	cfg := config.Load()
	log := applog.Logger()

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.WithError(err).Warnf("could not open log file %s", cfg.LogFile)
		} else {
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.SetOutput(out)
	applog.SetLevel(cfg.LogLevel)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if cfg.SeedImages {
		if err := repos.SeedImages(db); err != nil {
			log.WithError(err).Fatal("seed images")
		}
	}
	if cfg.ImageBucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		bucket, err := imagesync.NewS3Store(ctx, cfg)
		if err != nil {
			log.WithError(err).Fatal("image bucket")
		}
		if _, err := imagesync.NewImporter(bucket, repos.NewImageRepo(db), cfg.ImagePrefix).Run(ctx); err != nil {
			log.WithError(err).Error("image catalog sync failed")
		}
		cancel()
	}

	app := fiber.New(fiber.Config{
		Views:        web.Engine(),
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    8 << 20, // base64 image uploads
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: out}))
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        600,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	handlers.Routes(app, handlers.NewDeps(db, cfg, nil))
	app.Use(handlers.NotFound)

	log.WithField("port", cfg.Port).Info("marketplace listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
