package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/routeprint/pkg/api/routes"
)

func NewApp(renderer routes.Renderer) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	group := webApp.Group("/routeprint")

	group.Get("version", routes.APIVersion)

	routes.FormatRouter(group.Group("/format"), renderer)

	return webApp
}

func SetupServer(listen string, renderer routes.Renderer) error {
	return NewApp(renderer).Listen(listen)
}
