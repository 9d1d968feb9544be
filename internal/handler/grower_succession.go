package handler // succession creation endpoint

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/placement"
	"github.com/jwicker/garden-bed-planner/internal/queue"
	"github.com/jwicker/garden-bed-planner/internal/repository"
	queue_publisher "github.com/jwicker/garden-bed-planner/internal/service"
	"github.com/jwicker/garden-bed-planner/internal/succession"
	"github.com/jwicker/garden-bed-planner/internal/utils"
)

// defaultBedSideIn is used for bounds when the bed record cannot be loaded.
const defaultBedSideIn = 48

// CreateSuccession handles POST /v1/plantings/:id/successions and creates
// the next generation of a succession lineage.
//
// The whole operation runs in one transaction: if the source planting has
// no group yet it is stamped with a fresh group id and number 1, and that
// stamp rolls back together with everything else when a later step fails.
// The next number is claimed under a row lock; two concurrent requests on
// the same group serialize on SELECT ... FOR UPDATE, and the unique key on
// (succession_group_id, succession_number) backstops the claim.  A
// duplicate-key failure surfaces as 409 so the client can retry.
func (h *GrowerHandler) CreateSuccession(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sourceID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		BedID *uint64 `json:"bed_id"`
		XIn   *int32  `json:"x_in"`
		YIn   *int32  `json:"y_in"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if (body.XIn == nil) != (body.YIn == nil) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "x_in and y_in must be provided together"})
	}

	ctx := c.Request().Context()

	source, err := h.PlantingRepo.GetByIDAndOwner(ctx, sourceID, ownerID)
	if err != nil {
		if err == repository.ErrPlantingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "planting not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	plant, err := h.PlantRepo.GetByIDAndOwner(ctx, source.PlantID, ownerID)
	if err != nil {
		if err == repository.ErrPlantNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !plant.SuccessionEnabled {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "succession planting is not enabled for this plant"})
	}

	// Target bed defaults to the source's bed.  A missing bed record still
	// lets the succession through with conservative square-foot-garden
	// bounds rather than failing the whole request.
	targetBedID := source.BedID
	if body.BedID != nil {
		targetBedID = *body.BedID
	}
	boundsW, boundsH := defaultBedSideIn, defaultBedSideIn
	var bedName string
	bed, err := h.BedRepo.GetByIDAndOwner(ctx, targetBedID, ownerID)
	switch {
	case err == nil:
		boundsW, boundsH = int(bed.WidthIn), int(bed.HeightIn)
		bedName = bed.Name
	case err == repository.ErrBedNotFound && body.BedID != nil:
		// An explicitly requested bed must exist and be owned by the caller.
		return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
	case err != repository.ErrBedNotFound:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	now := h.Now().UTC()

	tx, err := h.PlantingRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Resolve the group.  Stamping the founder happens inside the
	// transaction so a failure further down undoes it.
	var groupID string
	if source.SuccessionGroupID.Valid {
		groupID = source.SuccessionGroupID.String
	} else {
		groupID, err = utils.RandomHex(16)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not mint group id"})
		}
		if err := h.PlantingRepo.AssignSuccessionGroupTx(ctx, tx, source.ID, groupID); err != nil {
			if err == repository.ErrConflict {
				return c.JSON(http.StatusConflict, echo.Map{"error": "planting was grouped concurrently, retry"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}

	numbers, err := h.PlantingRepo.SuccessionNumbersTx(ctx, tx, groupID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	nextNumber := succession.NextNumber(numbers)

	maxCount := nullI32Ptr(plant.SuccessionMaxCount)
	if succession.CapExceeded(nextNumber, maxCount) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("maximum of %d successions reached", succession.EffectiveCreationCap(maxCount)),
		})
	}

	// Explicit coordinates are used verbatim, without a collision check.
	rect := source.Rect()
	if body.XIn != nil {
		rect.X, rect.Y = int(*body.XIn), int(*body.YIn)
	} else {
		occupied, err := h.PlantingRepo.ListRectsByBedTx(ctx, tx, targetBedID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		pos, ok := placement.FindPosition(source.Rect(), occupied, boundsW, boundsH)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no available space in bed"})
		}
		rect.X, rect.Y = pos.X, pos.Y
	}

	days := nullI32Ptr(plant.DaysToMaturityMax)
	if days == nil {
		days = nullI32Ptr(plant.DaysToMaturityMin)
	}
	var harvest sql.NullTime
	if est := succession.EstimateHarvestDate(now, days); est != nil {
		harvest = sql.NullTime{Time: *est, Valid: true}
	}

	next := &repository.Planting{
		BedID:               targetBedID,
		PlantID:             plant.ID,
		XIn:                 int32(rect.X),
		YIn:                 int32(rect.Y),
		WidthIn:             source.WidthIn,
		HeightIn:            source.HeightIn,
		PlantCount:          source.PlantCount,
		SuccessionGroupID:   sql.NullString{String: groupID, Valid: true},
		SuccessionNumber:    sql.NullInt32{Int32: int32(nextNumber), Valid: true},
		DirectSowDate:       sql.NullTime{Time: now, Valid: true}, // successions count as direct sown
		ExpectedHarvestDate: harvest,
	}
	if err := h.PlantingRepo.CreateTx(ctx, tx, next); err != nil {
		if repository.IsDuplicateEntry(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "concurrent succession creation, retry"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create succession"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	committed = true

	// Best effort: a broker outage must not fail a committed succession.
	event := queue.SuccessionCreatedEvent{
		PlantingID:        next.ID,
		UserID:            ownerID,
		PlantID:           plant.ID,
		PlantName:         plant.Name,
		BedID:             targetBedID,
		BedName:           bedName,
		SuccessionGroupID: groupID,
		SuccessionNumber:  int32(nextNumber),
		XIn:               next.XIn,
		YIn:               next.YIn,
		WidthIn:           next.WidthIn,
		HeightIn:          next.HeightIn,
		PlantedAt:         now.Format(time.DateOnly),
	}
	if harvest.Valid {
		event.ExpectedHarvest = harvest.Time.Format(time.DateOnly)
	}
	_ = queue_publisher.PublishSuccessionCreated(ctx, event)

	return c.JSON(http.StatusCreated, echo.Map{
		"planting": toPlantingView(next),
		"plant":    toPlantView(plant),
		"bed": echo.Map{
			"id":        targetBedID,
			"name":      bedName,
			"width_in":  boundsW,
			"height_in": boundsH,
		},
	})
}
