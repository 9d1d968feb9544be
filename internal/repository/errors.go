// Package repository defines error values reused across multiple
// repositories.  These sentinels let handlers distinguish failure scenarios:
// ErrForbidden means the current user does not own the resource, ErrConflict
// means an operation cannot proceed because of conflicting existing state.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers should translate this into 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a write cannot be performed because of
// conflicting state.  Handlers should translate this into 409.
var ErrConflict = errors.New("conflict")

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation
// (error 1062).  The plantings table carries unique keys on (bed_id, x_in,
// y_in) and (succession_group_id, succession_number); a race between two
// concurrent creations surfaces here and is reported to the caller as a
// retryable conflict rather than a crash.
func IsDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
