package handler

import (
	"database/sql"
	"time"

	"github.com/jwicker/garden-bed-planner/internal/repository"
)

// Response shapes for grower endpoints.  Repository structs use
// database/sql null types, so each entity gets a JSON view with pointer
// fields that marshal to null cleanly.

type bedView struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	WidthIn   uint32  `json:"width_in"`
	HeightIn  uint32  `json:"height_in"`
	Notes     *string `json:"notes"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type plantView struct {
	ID                     uint64  `json:"id"`
	Name                   string  `json:"name"`
	Variety                *string `json:"variety"`
	DaysToMaturityMin      *int32  `json:"days_to_maturity_min"`
	DaysToMaturityMax      *int32  `json:"days_to_maturity_max"`
	SuccessionEnabled      bool    `json:"succession_enabled"`
	SuccessionIntervalDays *int32  `json:"succession_interval_days"`
	SuccessionMaxCount     *int32  `json:"succession_max_count"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}

type plantingView struct {
	ID                  uint64  `json:"id"`
	BedID               uint64  `json:"bed_id"`
	PlantID             uint64  `json:"plant_id"`
	XIn                 int32   `json:"x_in"`
	YIn                 int32   `json:"y_in"`
	WidthIn             int32   `json:"width_in"`
	HeightIn            int32   `json:"height_in"`
	PlantCount          uint32  `json:"plant_count"`
	SuccessionGroupID   *string `json:"succession_group_id"`
	SuccessionNumber    *int32  `json:"succession_number"`
	DirectSowDate       *string `json:"direct_sow_date"`
	TransplantDate      *string `json:"transplant_date"`
	SeedStartDate       *string `json:"seed_start_date"`
	ExpectedHarvestDate *string `json:"expected_harvest_date"`
	Notes               *string `json:"notes"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

func toBedView(b *repository.Bed) bedView {
	return bedView{
		ID:        b.ID,
		Name:      b.Name,
		WidthIn:   b.WidthIn,
		HeightIn:  b.HeightIn,
		Notes:     nullStrPtr(b.Notes),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toPlantView(p *repository.Plant) plantView {
	return plantView{
		ID:                     p.ID,
		Name:                   p.Name,
		Variety:                nullStrPtr(p.Variety),
		DaysToMaturityMin:      nullI32Ptr(p.DaysToMaturityMin),
		DaysToMaturityMax:      nullI32Ptr(p.DaysToMaturityMax),
		SuccessionEnabled:      p.SuccessionEnabled,
		SuccessionIntervalDays: nullI32Ptr(p.SuccessionIntervalDays),
		SuccessionMaxCount:     nullI32Ptr(p.SuccessionMaxCount),
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func toPlantingView(p *repository.Planting) plantingView {
	return plantingView{
		ID:                  p.ID,
		BedID:               p.BedID,
		PlantID:             p.PlantID,
		XIn:                 p.XIn,
		YIn:                 p.YIn,
		WidthIn:             p.WidthIn,
		HeightIn:            p.HeightIn,
		PlantCount:          p.PlantCount,
		SuccessionGroupID:   nullStrPtr(p.SuccessionGroupID),
		SuccessionNumber:    nullI32Ptr(p.SuccessionNumber),
		DirectSowDate:       nullDateStr(p.DirectSowDate),
		TransplantDate:      nullDateStr(p.TransplantDate),
		SeedStartDate:       nullDateStr(p.SeedStartDate),
		ExpectedHarvestDate: nullDateStr(p.ExpectedHarvestDate),
		Notes:               nullStrPtr(p.Notes),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func nullStrPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullI32Ptr(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}

// nullDateStr renders a nullable date column as YYYY-MM-DD.
func nullDateStr(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	v := t.Time.Format(time.DateOnly)
	return &v
}
