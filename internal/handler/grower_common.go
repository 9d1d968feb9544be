package handler // handler defines http handlers

import (
	"errors"  // errors provides the sentinel used in getUserID
	"strconv" // strconv converts path params to numeric types
	"time"    // time supplies the injected clock type

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/jwicker/garden-bed-planner/internal/repository" // repository holds the data access layer
)

// GrowerHandler bundles the repositories a grower needs to manage beds,
// the plant catalog and plantings.  Now is the clock used for planting
// dates, harvest estimates and due-date math; tests substitute a fixed
// time, production wiring passes time.Now.
type GrowerHandler struct {
	BedRepo      *repository.BedRepo
	PlantRepo    *repository.PlantRepo
	PlantingRepo *repository.PlantingRepo
	Now          func() time.Time
}

// NewGrowerHandler constructs a GrowerHandler and panics if any dependency is nil.
func NewGrowerHandler(bedRepo *repository.BedRepo, plantRepo *repository.PlantRepo, plantingRepo *repository.PlantingRepo, now func() time.Time) *GrowerHandler {
	if bedRepo == nil || plantRepo == nil || plantingRepo == nil {
		panic("nil repository passed to NewGrowerHandler")
	}
	if now == nil {
		now = time.Now
	}
	return &GrowerHandler{
		BedRepo:      bedRepo,
		PlantRepo:    plantRepo,
		PlantingRepo: plantingRepo,
		Now:          now,
	}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id route param as an unsigned integer.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
