package handler // grower planting endpoints

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/geometry"
	"github.com/jwicker/garden-bed-planner/internal/placement"
	"github.com/jwicker/garden-bed-planner/internal/repository"
	"github.com/jwicker/garden-bed-planner/internal/succession"
)

// CreatePlanting handles POST /v1/plantings.  The footprint must fit inside
// the bed and may not overlap any existing planting; touching edges are
// allowed.  When x_in/y_in are omitted the position finder picks the first
// free spot next to existing plantings.
func (h *GrowerHandler) CreatePlanting(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		BedID         *uint64 `json:"bed_id"`
		PlantID       *uint64 `json:"plant_id"`
		XIn           *int32  `json:"x_in"`
		YIn           *int32  `json:"y_in"`
		WidthIn       *int32  `json:"width_in"`
		HeightIn      *int32  `json:"height_in"`
		PlantCount    *uint32 `json:"plant_count"`
		DirectSowDate *string `json:"direct_sow_date"`
		Transplant    *string `json:"transplant_date"`
		SeedStart     *string `json:"seed_start_date"`
		Notes         *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.BedID == nil || body.PlantID == nil || body.WidthIn == nil || body.HeightIn == nil ||
		*body.WidthIn <= 0 || *body.HeightIn <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "bed_id, plant_id, width_in and height_in are required and dimensions must be positive",
		})
	}
	if (body.XIn == nil) != (body.YIn == nil) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "x_in and y_in must be provided together"})
	}

	ctx := c.Request().Context()

	bed, err := h.BedRepo.GetByIDAndOwner(ctx, *body.BedID, ownerID)
	if err != nil {
		if err == repository.ErrBedNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	plant, err := h.PlantRepo.GetByIDAndOwner(ctx, *body.PlantID, ownerID)
	if err != nil {
		if err == repository.ErrPlantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	occupied, err := h.PlantingRepo.ListRectsByBed(ctx, bed.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	rect := geometry.Rect{W: int(*body.WidthIn), H: int(*body.HeightIn)}
	if body.XIn != nil {
		rect.X = int(*body.XIn)
		rect.Y = int(*body.YIn)
		if rect.X < 0 || rect.Y < 0 || !rect.Within(int(bed.WidthIn), int(bed.HeightIn)) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "planting does not fit inside the bed"})
		}
		for _, o := range occupied {
			if rect.Overlaps(o) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "planting overlaps an existing planting"})
			}
		}
	} else {
		// Auto-placement searches relative to the bed origin.
		pos, ok := placement.FindPosition(rect, occupied, int(bed.WidthIn), int(bed.HeightIn))
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no available space in bed"})
		}
		rect.X, rect.Y = pos.X, pos.Y
	}

	count := uint32(1)
	if body.PlantCount != nil {
		if *body.PlantCount == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "plant_count must be at least 1"})
		}
		count = *body.PlantCount
	}

	directSow, ok := parseDatePtr(body.DirectSowDate)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "direct_sow_date must be YYYY-MM-DD"})
	}
	transplant, ok := parseDatePtr(body.Transplant)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "transplant_date must be YYYY-MM-DD"})
	}
	seedStart, ok := parseDatePtr(body.SeedStart)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seed_start_date must be YYYY-MM-DD"})
	}

	// Harvest estimate anchors at the planted date when one is known.
	var harvest sql.NullTime
	if anchor := firstValid(directSow, transplant, seedStart); anchor != nil {
		days := nullI32Ptr(plant.DaysToMaturityMax)
		if days == nil {
			days = nullI32Ptr(plant.DaysToMaturityMin)
		}
		if est := succession.EstimateHarvestDate(*anchor, days); est != nil {
			harvest = sql.NullTime{Time: *est, Valid: true}
		}
	}

	p := &repository.Planting{
		BedID:               bed.ID,
		PlantID:             plant.ID,
		XIn:                 int32(rect.X),
		YIn:                 int32(rect.Y),
		WidthIn:             *body.WidthIn,
		HeightIn:            *body.HeightIn,
		PlantCount:          count,
		DirectSowDate:       timeNull(directSow),
		TransplantDate:      timeNull(transplant),
		SeedStartDate:       timeNull(seedStart),
		ExpectedHarvestDate: harvest,
		Notes:               trimmedNullStr(body.Notes),
	}
	if err := h.PlantingRepo.Create(ctx, p); err != nil {
		if repository.IsDuplicateEntry(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "position already taken, retry"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create planting"})
	}
	return c.JSON(http.StatusCreated, toPlantingView(p))
}

// ListPlantings handles GET /v1/beds/:id/plantings.
func (h *GrowerHandler) ListPlantings(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bedID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.BedRepo.GetByIDAndOwner(c.Request().Context(), bedID, ownerID); err != nil {
		if err == repository.ErrBedNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	plantings, err := h.PlantingRepo.ListByBedAndOwner(c.Request().Context(), bedID, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]plantingView, 0, len(plantings))
	for _, p := range plantings {
		out = append(out, toPlantingView(p))
	}
	return c.JSON(http.StatusOK, out)
}

// GetPlanting handles GET /v1/plantings/:id.
func (h *GrowerHandler) GetPlanting(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.PlantingRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if err == repository.ErrPlantingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "planting not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toPlantingView(p))
}

// DeletePlanting handles DELETE /v1/plantings/:id.  The succession number
// of a deleted generation is never reissued.
func (h *GrowerHandler) DeletePlanting(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.PlantingRepo.DeleteByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
		if err == repository.ErrPlantingNotFound || err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "planting not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete planting"})
	}
	return c.NoContent(http.StatusNoContent)
}

// parseDatePtr parses an optional YYYY-MM-DD string.  The second return is
// false when the string is present but malformed.
func parseDatePtr(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func firstValid(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil {
			return t
		}
	}
	return nil
}

func timeNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
