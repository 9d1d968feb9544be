package repository // repository defines data access for plantings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jwicker/garden-bed-planner/internal/geometry"
)

// Planting is one rectangular occupancy of a plant inside a bed.  Position
// and footprint are whole inches.  SuccessionGroupID and SuccessionNumber
// are null until the planting joins a lineage.
type Planting struct {
	ID                  uint64
	BedID               uint64 // FK -> beds.id
	PlantID             uint64 // FK -> plants.id, immutable after creation
	XIn                 int32  // top-left x inside the bed
	YIn                 int32  // top-left y inside the bed
	WidthIn             int32
	HeightIn            int32
	PlantCount          uint32         // individual plants in this rectangle
	SuccessionGroupID   sql.NullString // lineage token, shared by all generations
	SuccessionNumber    sql.NullInt32  // 1-based generation index, never reused
	DirectSowDate       sql.NullTime
	TransplantDate      sql.NullTime
	SeedStartDate       sql.NullTime
	ExpectedHarvestDate sql.NullTime
	Notes               sql.NullString
	CreatedAt           string
	UpdatedAt           string
}

// Rect returns the planting's footprint as a geometry rectangle.
func (p *Planting) Rect() geometry.Rect {
	return geometry.Rect{X: int(p.XIn), Y: int(p.YIn), W: int(p.WidthIn), H: int(p.HeightIn)}
}

// ErrPlantingNotFound is returned when a planting lookup yields no rows.
var ErrPlantingNotFound = errors.New("planting not found")

// PlantingRepo provides data access to the plantings table.  Multi-step
// writes (succession creation) run inside a *sql.Tx obtained via DB().
type PlantingRepo struct {
	db *sql.DB
}

// NewPlantingRepo returns a PlantingRepo bound to the provided database.
func NewPlantingRepo(db *sql.DB) *PlantingRepo { return &PlantingRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions that
// span repository calls.
func (r *PlantingRepo) DB() *sql.DB { return r.db }

const plantingColumns = `id, bed_id, plant_id, x_in, y_in, width_in, height_in, plant_count,
	succession_group_id, succession_number,
	direct_sow_date, transplant_date, seed_start_date, expected_harvest_date,
	notes, created_at, updated_at`

func scanPlanting(row interface{ Scan(...any) error }, p *Planting) error {
	return row.Scan(&p.ID, &p.BedID, &p.PlantID, &p.XIn, &p.YIn, &p.WidthIn, &p.HeightIn,
		&p.PlantCount, &p.SuccessionGroupID, &p.SuccessionNumber,
		&p.DirectSowDate, &p.TransplantDate, &p.SeedStartDate, &p.ExpectedHarvestDate,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt)
}

// Create inserts a planting outside any transaction.  Used for direct
// placements where the handler has already validated bounds and overlap.
func (r *PlantingRepo) Create(ctx context.Context, p *Planting) error {
	id, err := insertPlanting(ctx, r.db, p)
	if err != nil {
		return err
	}
	p.ID = id
	const q = `SELECT ` + plantingColumns + ` FROM plantings WHERE id = ?`
	return scanPlanting(r.db.QueryRowContext(ctx, q, p.ID), p)
}

// CreateTx inserts a planting within the provided transaction.  The caller
// commits or rolls back.  Duplicate-key violations on the position or
// succession-number unique keys propagate to the caller; test them with
// IsDuplicateEntry.
func (r *PlantingRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *Planting) error {
	id, err := insertPlanting(ctx, tx, p)
	if err != nil {
		return err
	}
	p.ID = id
	const q = `SELECT ` + plantingColumns + ` FROM plantings WHERE id = ?`
	return scanPlanting(tx.QueryRowContext(ctx, q, p.ID), p)
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertPlanting(ctx context.Context, db execQuerier, p *Planting) (uint64, error) {
	const q = `INSERT INTO plantings
	        (bed_id, plant_id, x_in, y_in, width_in, height_in, plant_count,
	         succession_group_id, succession_number,
	         direct_sow_date, transplant_date, seed_start_date, expected_harvest_date, notes)
	        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, q,
		p.BedID, p.PlantID, p.XIn, p.YIn, p.WidthIn, p.HeightIn, p.PlantCount,
		p.SuccessionGroupID, p.SuccessionNumber,
		p.DirectSowDate, p.TransplantDate, p.SeedStartDate, p.ExpectedHarvestDate, p.Notes)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByIDAndOwner retrieves a planting while enforcing ownership through the
// bed it sits in.  Returns ErrPlantingNotFound when absent or owned by
// someone else.
func (r *PlantingRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*Planting, error) {
	const q = `SELECT p.id, p.bed_id, p.plant_id, p.x_in, p.y_in, p.width_in, p.height_in, p.plant_count,
	                  p.succession_group_id, p.succession_number,
	                  p.direct_sow_date, p.transplant_date, p.seed_start_date, p.expected_harvest_date,
	                  p.notes, p.created_at, p.updated_at
	           FROM plantings p
	           JOIN beds b ON b.id = p.bed_id
	           WHERE p.id = ? AND b.owner_id = ?`
	var p Planting
	if err := scanPlanting(r.db.QueryRowContext(ctx, q, id, ownerID), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlantingNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByBedAndOwner returns all plantings in a bed the owner controls,
// ordered by id.
func (r *PlantingRepo) ListByBedAndOwner(ctx context.Context, bedID, ownerID uint64) ([]*Planting, error) {
	const q = `SELECT p.id, p.bed_id, p.plant_id, p.x_in, p.y_in, p.width_in, p.height_in, p.plant_count,
	                  p.succession_group_id, p.succession_number,
	                  p.direct_sow_date, p.transplant_date, p.seed_start_date, p.expected_harvest_date,
	                  p.notes, p.created_at, p.updated_at
	           FROM plantings p
	           JOIN beds b ON b.id = p.bed_id
	           WHERE p.bed_id = ? AND b.owner_id = ?
	           ORDER BY p.id`
	rows, err := r.db.QueryContext(ctx, q, bedID, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Planting
	for rows.Next() {
		p := new(Planting)
		if err := scanPlanting(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRectsByBed returns the occupied rectangles of a bed for collision
// checks on direct placements.
func (r *PlantingRepo) ListRectsByBed(ctx context.Context, bedID uint64) ([]geometry.Rect, error) {
	const q = `SELECT x_in, y_in, width_in, height_in FROM plantings WHERE bed_id = ?`
	return queryRects(ctx, r.db, q, bedID)
}

// ListRectsByBedTx is ListRectsByBed inside an existing transaction, used by
// the position finder during succession creation so the snapshot it searches
// is the one the insert will be validated against.
func (r *PlantingRepo) ListRectsByBedTx(ctx context.Context, tx *sql.Tx, bedID uint64) ([]geometry.Rect, error) {
	const q = `SELECT x_in, y_in, width_in, height_in FROM plantings WHERE bed_id = ? FOR UPDATE`
	return queryRects(ctx, tx, q, bedID)
}

type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryRects(ctx context.Context, db rowQuerier, q string, bedID uint64) ([]geometry.Rect, error) {
	rows, err := db.QueryContext(ctx, q, bedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []geometry.Rect
	for rows.Next() {
		var x, y, w, h int32
		if err := rows.Scan(&x, &y, &w, &h); err != nil {
			return nil, err
		}
		out = append(out, geometry.Rect{X: int(x), Y: int(y), W: int(w), H: int(h)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SuccessionNumbersTx returns the generation numbers stored for a group.
// The caller derives the next number from the stored values.  FOR UPDATE
// serializes concurrent "claim next number" attempts on the same group;
// together with the unique key on (succession_group_id, succession_number)
// this prevents two simultaneous creations from both taking the same number.
func (r *PlantingRepo) SuccessionNumbersTx(ctx context.Context, tx *sql.Tx, groupID string) ([]int, error) {
	const q = `SELECT succession_number FROM plantings
	           WHERE succession_group_id = ? AND succession_number IS NOT NULL
	           ORDER BY succession_number FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var nums []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, rows.Err()
}

// AssignSuccessionGroupTx retroactively stamps the founding planting of a
// new lineage with a group id and succession number 1.  The WHERE clause
// keeps the stamp idempotent: a planting that already belongs to a group is
// left alone and the method reports ErrConflict.
func (r *PlantingRepo) AssignSuccessionGroupTx(ctx context.Context, tx *sql.Tx, plantingID uint64, groupID string) error {
	const q = `UPDATE plantings
	           SET succession_group_id = ?, succession_number = 1, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND succession_group_id IS NULL`
	res, err := tx.ExecContext(ctx, q, groupID, plantingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrConflict
	}
	return nil
}

// DeleteByIDAndOwner deletes a planting while ensuring the bed belongs to
// the owner.  The planting's succession number is not freed: numbering is
// derived from the stored maximum, so a deleted generation stays counted.
func (r *PlantingRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	const q = `DELETE p FROM plantings p
	           JOIN beds b ON b.id = p.bed_id
	           WHERE p.id = ? AND b.owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
