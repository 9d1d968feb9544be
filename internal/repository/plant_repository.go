package repository // repository defines data access for the plant catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jwicker/garden-bed-planner/internal/succession"
)

// Plant is a catalog entry with the scheduling fields that drive succession
// planting.  Nullable columns use database/sql null types.
type Plant struct {
	ID                     uint64         // primary key
	OwnerID                uint64         // FK -> users.id
	Name                   string         // e.g. Lettuce
	Variety                sql.NullString // optional cultivar
	DaysToMaturityMin      sql.NullInt32  // shortest maturity figure
	DaysToMaturityMax      sql.NullInt32  // longest maturity figure
	SuccessionEnabled      bool           // repeated plantings scheduled when true
	SuccessionIntervalDays sql.NullInt32  // days between generations
	SuccessionMaxCount     sql.NullInt32  // per-plant cap on generations
	CreatedAt              string
	UpdatedAt              string
}

// ErrPlantNotFound is returned when a plant lookup yields no rows.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepo provides methods to work with the plants table.
type PlantRepo struct {
	db *sql.DB
}

// NewPlantRepo constructs a PlantRepo with the given DB handle.
func NewPlantRepo(db *sql.DB) *PlantRepo {
	return &PlantRepo{db: db}
}

// Create inserts a catalog entry.  On success the plant's ID is populated
// and timestamps are read back.
func (r *PlantRepo) Create(ctx context.Context, p *Plant) error {
	const qInsert = `INSERT INTO plants
	        (owner_id, name, variety, days_to_maturity_min, days_to_maturity_max,
	         succession_enabled, succession_interval_days, succession_max_count)
	        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		p.OwnerID, p.Name, p.Variety, p.DaysToMaturityMin, p.DaysToMaturityMax,
		p.SuccessionEnabled, p.SuccessionIntervalDays, p.SuccessionMaxCount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM plants WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// GetByIDAndOwner retrieves a plant only if the owner matches; returns
// ErrPlantNotFound otherwise.
func (r *PlantRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*Plant, error) {
	const q = `SELECT id, owner_id, name, variety, days_to_maturity_min, days_to_maturity_max,
	                  succession_enabled, succession_interval_days, succession_max_count,
	                  created_at, updated_at
	           FROM plants WHERE id = ? AND owner_id = ?`
	var p Plant
	err := r.db.QueryRowContext(ctx, q, id, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Variety, &p.DaysToMaturityMin, &p.DaysToMaturityMax,
		&p.SuccessionEnabled, &p.SuccessionIntervalDays, &p.SuccessionMaxCount,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlantNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByOwner returns the owner's full catalog ordered by name.
func (r *PlantRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*Plant, error) {
	const q = `SELECT id, owner_id, name, variety, days_to_maturity_min, days_to_maturity_max,
	                  succession_enabled, succession_interval_days, succession_max_count,
	                  created_at, updated_at
	           FROM plants WHERE owner_id = ? ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Plant
	for rows.Next() {
		p := new(Plant)
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Variety, &p.DaysToMaturityMin,
			&p.DaysToMaturityMax, &p.SuccessionEnabled, &p.SuccessionIntervalDays,
			&p.SuccessionMaxCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndOwner removes a catalog entry the owner controls.  Returns
// ErrConflict when plantings still reference the plant.
func (r *PlantRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	var n int
	const qCount = `SELECT COUNT(*) FROM plantings WHERE plant_id = ?`
	if err := r.db.QueryRowContext(ctx, qCount, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	const q = `DELETE FROM plants WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListSchedulesByOwner loads every succession-enabled plant the owner has,
// together with all of its plantings and their planting-related dates, in the
// shape the due scheduler consumes.  A single LEFT JOIN keeps this one round
// trip; plants without plantings still appear with an empty slice.
func (r *PlantRepo) ListSchedulesByOwner(ctx context.Context, ownerID uint64) ([]succession.PlantSchedule, error) {
	const q = `SELECT p.id, p.name, p.succession_interval_days, p.succession_max_count,
	                  pl.id, b.name, pl.direct_sow_date, pl.transplant_date, pl.seed_start_date
	           FROM plants p
	           LEFT JOIN plantings pl ON pl.plant_id = p.id
	           LEFT JOIN beds b ON b.id = pl.bed_id
	           WHERE p.owner_id = ? AND p.succession_enabled = 1
	           ORDER BY p.id, pl.id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []succession.PlantSchedule
	var cur *succession.PlantSchedule
	for rows.Next() {
		var (
			plantID    uint64
			plantName  string
			interval   sql.NullInt32
			maxCount   sql.NullInt32
			plantingID sql.NullInt64
			bedName    sql.NullString
			directSow  sql.NullTime
			transplant sql.NullTime
			seedStart  sql.NullTime
		)
		if err := rows.Scan(&plantID, &plantName, &interval, &maxCount,
			&plantingID, &bedName, &directSow, &transplant, &seedStart); err != nil {
			return nil, err
		}
		if cur == nil || cur.ID != plantID {
			out = append(out, succession.PlantSchedule{
				ID:           plantID,
				Name:         plantName,
				IntervalDays: nullInt32Ptr(interval),
				MaxCount:     nullInt32Ptr(maxCount),
			})
			cur = &out[len(out)-1]
		}
		if plantingID.Valid {
			cur.Plantings = append(cur.Plantings, succession.PlantingDates{
				ID:         uint64(plantingID.Int64),
				BedName:    bedName.String,
				DirectSow:  nullTimePtr(directSow),
				Transplant: nullTimePtr(transplant),
				SeedStart:  nullTimePtr(seedStart),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullInt32Ptr(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
