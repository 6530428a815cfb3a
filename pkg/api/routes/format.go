package routes

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/routeprint/pkg/formatter"
	"github.com/travigo/routeprint/pkg/itinerary"
)

type Renderer interface {
	Render(ctx context.Context, source string, output formatter.Output) (string, error)
}

var contentTypes = map[formatter.Output]string{
	formatter.OutputText: fiber.MIMETextPlainCharsetUTF8,
	formatter.OutputJSON: fiber.MIMEApplicationJSONCharsetUTF8,
	formatter.OutputYAML: "application/yaml; charset=utf-8",
}

func FormatRouter(router fiber.Router, renderer Renderer) {
	router.Get("/", func(c *fiber.Ctx) error {
		return formatRoute(c, renderer)
	})
}

func formatRoute(c *fiber.Ctx, renderer Renderer) error {
	source := c.Query("url")
	if source == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A url must be provided",
		})
	}

	// Only remote pages may be requested, never files on this host.
	parsed, err := url.Parse(source)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "The url must be an http or https URL",
		})
	}

	output, err := formatter.ParseOutput(c.Query("output"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rendered, err := renderer.Render(c.UserContext(), source, output)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, contentTypes[output])
	return c.SendString(rendered)
}

func errorStatus(err error) int {
	var fetchErr *itinerary.FetchError
	var extractionErr *itinerary.ExtractionError
	var formatErr *itinerary.FormatError

	switch {
	case errors.As(err, &fetchErr):
		return fiber.StatusBadGateway
	case errors.As(err, &extractionErr), errors.As(err, &formatErr):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
