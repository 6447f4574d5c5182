package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"entrelink/investor-match/internal/models"
	"entrelink/investor-match/internal/services"
)

type MatchHandler struct {
	matcher services.MatcherService
}

func NewMatchHandler(matcher services.MatcherService) *MatchHandler {
	return &MatchHandler{
		matcher: matcher,
	}
}

// HandleMatch handles POST /match. Validation happens before any outbound
// call; pipeline failures map to opaque 500s so upstream error text never
// reaches the caller. An empty match list is a success, not an error.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No query provided",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No query provided",
		})
	}

	investors, err := h.matcher.Match(c.UserContext(), req.Query)
	if err != nil {
		log.Printf("❌ Match pipeline failed: %v\n", err)

		switch {
		case errors.Is(err, services.ErrExtractionFailed):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to extract startup attributes",
			})
		case errors.Is(err, services.ErrMissingCredential):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		case errors.Is(err, services.ErrUpstreamSearchFailed):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch investors",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to process request",
			})
		}
	}

	if investors == nil {
		investors = []models.Investor{}
	}

	return c.JSON(models.MatchResponse{Investors: investors})
}
