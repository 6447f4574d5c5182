package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"entrelink/investor-match/internal/repositories"
)

const defaultActivityLimit = 20

type ActivityHandler struct {
	queryLogRepo repositories.QueryLogRepository
}

func NewActivityHandler(queryLogRepo repositories.QueryLogRepository) *ActivityHandler {
	return &ActivityHandler{
		queryLogRepo: queryLogRepo,
	}
}

// HandleRecentActivity handles GET /recent-activity. Feeds the launchpad
// activity widget with the latest matching runs.
func (h *ActivityHandler) HandleRecentActivity(c *fiber.Ctx) error {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid limit",
			})
		}
		limit = parsed
	}

	logs, err := h.queryLogRepo.FindRecent(limit)
	if err != nil {
		log.Printf("❌ Failed to fetch recent activity: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recent activity",
		})
	}

	return c.JSON(fiber.Map{
		"queries": logs,
	})
}
