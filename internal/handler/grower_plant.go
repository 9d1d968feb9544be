package handler // grower plant catalog endpoints

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/repository"
)

// CreatePlant handles POST /v1/plants.  Scheduling fields are optional but
// validated: interval, max count and maturity figures must be positive.
func (h *GrowerHandler) CreatePlant(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name                   string  `json:"name"`
		Variety                *string `json:"variety"`
		DaysToMaturityMin      *int32  `json:"days_to_maturity_min"`
		DaysToMaturityMax      *int32  `json:"days_to_maturity_max"`
		SuccessionEnabled      bool    `json:"succession_enabled"`
		SuccessionIntervalDays *int32  `json:"succession_interval_days"`
		SuccessionMaxCount     *int32  `json:"succession_max_count"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	for _, f := range []*int32{body.DaysToMaturityMin, body.DaysToMaturityMax, body.SuccessionIntervalDays, body.SuccessionMaxCount} {
		if f != nil && *f <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "numeric fields must be positive when provided"})
		}
	}
	if body.DaysToMaturityMin != nil && body.DaysToMaturityMax != nil && *body.DaysToMaturityMin > *body.DaysToMaturityMax {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "days_to_maturity_min must not exceed days_to_maturity_max"})
	}

	p := &repository.Plant{
		OwnerID:                ownerID,
		Name:                   name,
		Variety:                trimmedNullStr(body.Variety),
		DaysToMaturityMin:      ptrNullI32(body.DaysToMaturityMin),
		DaysToMaturityMax:      ptrNullI32(body.DaysToMaturityMax),
		SuccessionEnabled:      body.SuccessionEnabled,
		SuccessionIntervalDays: ptrNullI32(body.SuccessionIntervalDays),
		SuccessionMaxCount:     ptrNullI32(body.SuccessionMaxCount),
	}
	if err := h.PlantRepo.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create plant"})
	}
	return c.JSON(http.StatusCreated, toPlantView(p))
}

// ListPlants handles GET /v1/plants.
func (h *GrowerHandler) ListPlants(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	plants, err := h.PlantRepo.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]plantView, 0, len(plants))
	for _, p := range plants {
		out = append(out, toPlantView(p))
	}
	return c.JSON(http.StatusOK, out)
}

// GetPlant handles GET /v1/plants/:id.
func (h *GrowerHandler) GetPlant(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.PlantRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if err == repository.ErrPlantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toPlantView(p))
}

// DeletePlant handles DELETE /v1/plants/:id.  A plant that still has
// plantings cannot be removed.
func (h *GrowerHandler) DeletePlant(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.PlantRepo.DeleteByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
		switch err {
		case repository.ErrPlantNotFound, sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plant not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "plant still has plantings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete plant"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func trimmedNullStr(s *string) sql.NullString {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.TrimSpace(*s), Valid: true}
}

func ptrNullI32(n *int32) sql.NullInt32 {
	if n == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *n, Valid: true}
}
