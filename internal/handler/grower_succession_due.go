package handler // upcoming-successions query endpoint

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/succession"
)

// UpcomingSuccessions handles GET /v1/successions/upcoming.  It loads every
// succession-enabled plant with its dated plantings in one query and hands
// the snapshots to the scheduler.  Read-only, so it sits behind the
// response cache.
func (h *GrowerHandler) UpcomingSuccessions(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	plants, err := h.PlantRepo.ListSchedulesByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	items := succession.UpcomingSuccessions(plants, h.Now().UTC())
	overdue := 0
	for _, it := range items {
		if it.IsOverdue {
			overdue++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":   items,
		"total":   len(items),
		"overdue": overdue,
	})
}
