package repository // repository defines data access for grower accounts

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jwicker/garden-bed-planner/internal/utils"
)

// User is a grower account.  Emails are stored lowercased; passwords are
// kept only as bcrypt hashes.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         string // always GROWER today, kept for forward compatibility
	IsActive     bool
	CreatedAt    string
	UpdatedAt    string
}

// ErrEmailExists is returned when registration hits an already-taken email.
var ErrEmailExists = errors.New("email already exists")

// UserRepo provides account persistence for the auth endpoints.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, email, password_hash, role, is_active, created_at, updated_at`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create hashes the password and inserts the account, returning the new ID.
// The unique index on email turns duplicate registrations into ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?)`,
		email, hash, role)
	if err != nil {
		if IsDuplicateEntry(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail looks an account up by its normalized email.  Login treats
// sql.ErrNoRows the same as a bad password.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email))
}

// GetByID looks an account up by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id))
}
