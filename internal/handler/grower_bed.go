package handler // grower bed endpoints

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/repository"
)

// CreateBed handles POST /v1/beds.  Dimensions are whole inches and fixed
// for the life of the bed; plantings are validated against them.
func (h *GrowerHandler) CreateBed(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name     string  `json:"name"`
		WidthIn  *uint32 `json:"width_in"`
		HeightIn *uint32 `json:"height_in"`
		Notes    *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" || body.WidthIn == nil || body.HeightIn == nil || *body.WidthIn == 0 || *body.HeightIn == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name, width_in and height_in are required and must be greater than zero",
		})
	}
	var notes sql.NullString
	if body.Notes != nil && strings.TrimSpace(*body.Notes) != "" {
		notes = sql.NullString{String: strings.TrimSpace(*body.Notes), Valid: true}
	}
	bed := &repository.Bed{
		OwnerID:  ownerID,
		Name:     name,
		WidthIn:  *body.WidthIn,
		HeightIn: *body.HeightIn,
		Notes:    notes,
	}
	if err := h.BedRepo.Create(c.Request().Context(), bed); err != nil {
		if repository.IsDuplicateEntry(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "a bed with this name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create bed"})
	}
	return c.JSON(http.StatusCreated, toBedView(bed))
}

// ListBeds handles GET /v1/beds and returns the caller's beds.
func (h *GrowerHandler) ListBeds(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	beds, err := h.BedRepo.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]bedView, 0, len(beds))
	for _, b := range beds {
		out = append(out, toBedView(b))
	}
	return c.JSON(http.StatusOK, out)
}

// GetBed handles GET /v1/beds/:id.
func (h *GrowerHandler) GetBed(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	bed, err := h.BedRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if err == repository.ErrBedNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toBedView(bed))
}

// DeleteBed handles DELETE /v1/beds/:id.  Plantings inside the bed are
// removed with it via ON DELETE CASCADE.
func (h *GrowerHandler) DeleteBed(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.BedRepo.DeleteByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
		if err == sql.ErrNoRows || err == repository.ErrBedNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete bed"})
	}
	return c.NoContent(http.StatusNoContent)
}
