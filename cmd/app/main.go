// Command app boots the service and exposes only a health and version
// endpoint over HTTP — command/query access is exercised through the
// services in internal/services, not through this transport (HTTP routing
// of the domain operations is out of this spec's scope).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/internal/bootstrap"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := bootstrap.LoadConfig()

	service, err := bootstrap.NewService(ctx, cfg)
	if err != nil {
		panic(err)
	}

	defer service.Shutdown()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"version": version})
	})

	launcher := bootstrap.NewLauncher(
		bootstrap.WithLogger(service.Logger()),
		bootstrap.RunApp("http", httpApp{app: app, address: cfg.ServerAddress}),
	)

	launcher.Run()
}

type httpApp struct {
	app     *fiber.App
	address string
}

func (h httpApp) Run(_ *bootstrap.Launcher) error {
	return h.app.Listen(h.address)
}
