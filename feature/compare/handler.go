package compare

import (
	"head2head/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for athlete search and comparison.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/athletes/search", h.HandleSearch)
	app.Get("/compare", h.HandleCompare)
}

// HandleSearch proxies the canonical athlete search.
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	name := c.Query("name")
	if len(name) < 2 {
		return c.JSON([]any{})
	}

	l := logger.WithRayID(h.service.logger, c)

	found, err := h.service.SearchAthletes(c.Context(), name)
	if err != nil {
		l.Error("Athlete search failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(found)
}

// HandleCompare builds the head-to-head record for two athletes.
// Query parameters: aId, aFirst, aLast, bId, bFirst, bLast, discipline (optional).
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	a := AthleteRef{
		ID:        c.QueryInt("aId"),
		FirstName: c.Query("aFirst"),
		LastName:  c.Query("aLast"),
	}
	b := AthleteRef{
		ID:        c.QueryInt("bId"),
		FirstName: c.Query("bFirst"),
		LastName:  c.Query("bLast"),
	}

	if a.ID == 0 || b.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "aId and bId are required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	rec, err := h.service.Compare(c.Context(), a, b, c.Query("discipline"))
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rec)
}
