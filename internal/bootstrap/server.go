package bootstrap

import (
	"context"
	"log/slog"

	"github.com/init-pkg/excel-import/internal/config"

	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"go.uber.org/fx"
)

func newFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "excel-import",
	})

	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use("/swagger/*", swagger.HandlerDefault)

	return app
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.Http.Addr); err != nil {
					log.Error("http.server.stopped", "error", err)
				}
			}()
			log.Info("http.server.started", "addr", cfg.Http.Addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
