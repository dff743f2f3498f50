package scrape

import (
	"errors"

	"head2head/core/logger"
	"head2head/core/webclient"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for scraping provider results.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the scrape routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/races", h.HandleListRaces)
	app.Post("/scrape", h.HandleScrape)
}

// HandleListRaces returns the registered provider table.
func (h *Handler) HandleListRaces(c *fiber.Ctx) error {
	return c.JSON(h.service.Registry().List())
}

// HandleScrape runs a batch scrape for one race edition.
func (h *Handler) HandleScrape(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if len(req.Athletes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "at least one athlete is required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.ScrapeBatch(c.Context(), req)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   cfgErr.Msg,
				"options": cfgErr.Options,
			})
		}

		var statusErr *webclient.StatusError
		if errors.As(err, &statusErr) {
			l.Error("Provider fetch failed", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		l.Error("Scrape failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
