package repository // repository holds data access logic for domain entities

import (
	"context"      // context manages deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors allows sentinel definitions
)

// Bed represents a rectangular growing area.  Width and height are whole
// inches; bed dimensions do not change once created.
type Bed struct {
	ID        uint64         // primary key of the bed
	OwnerID   uint64         // references the owning user's ID
	Name      string         // human readable label, unique per owner
	WidthIn   uint32         // usable width in inches
	HeightIn  uint32         // usable height in inches
	Notes     sql.NullString // optional free-form notes
	IsActive  bool           // whether the bed is currently in use
	CreatedAt string         // creation timestamp
	UpdatedAt string         // last update timestamp
}

// ErrBedNotFound is returned when a bed lookup fails.
var ErrBedNotFound = errors.New("bed not found")

// BedRepo provides methods to create and retrieve beds.
type BedRepo struct {
	db *sql.DB
}

// NewBedRepo constructs a BedRepo with the given DB handle.
func NewBedRepo(db *sql.DB) *BedRepo {
	return &BedRepo{db: db}
}

// Create inserts a new bed.  OwnerID, Name, WidthIn and HeightIn must be set.
// After the insert the record is read back so timestamps and the is_active
// flag are populated.
func (r *BedRepo) Create(ctx context.Context, b *Bed) error {
	const qInsert = `INSERT INTO beds (owner_id, name, width_in, height_in, notes)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, b.OwnerID, b.Name, b.WidthIn, b.HeightIn, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = `SELECT id, owner_id, name, width_in, height_in, notes, is_active, created_at, updated_at
	                 FROM beds WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, b.ID).
		Scan(&b.ID, &b.OwnerID, &b.Name, &b.WidthIn, &b.HeightIn, &b.Notes, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
}

// GetByIDAndOwner retrieves a bed only if it belongs to the given owner.
// Used to enforce resource ownership; returns ErrBedNotFound otherwise.
func (r *BedRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*Bed, error) {
	const q = `SELECT id, owner_id, name, width_in, height_in, notes, is_active, created_at, updated_at
	           FROM beds WHERE id = ? AND owner_id = ?`
	var b Bed
	err := r.db.QueryRowContext(ctx, q, id, ownerID).
		Scan(&b.ID, &b.OwnerID, &b.Name, &b.WidthIn, &b.HeightIn, &b.Notes, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBedNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns all beds belonging to the owner ordered by id.
func (r *BedRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*Bed, error) {
	const q = `SELECT id, owner_id, name, width_in, height_in, notes, is_active, created_at, updated_at
	           FROM beds WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Bed
	for rows.Next() {
		b := new(Bed)
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.WidthIn, &b.HeightIn, &b.Notes, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndOwner deletes a bed the owner controls.  Returns
// sql.ErrNoRows when the bed does not exist or belongs to someone else.
// Plantings in the bed are removed by the FK cascade.
func (r *BedRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	const q = `DELETE FROM beds WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
