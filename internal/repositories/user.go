package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

const userColumns = `id, first_name, last_name, email, password_hash, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns every user ordered by last name, then first name.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY last_name ASC, first_name ASC, id ASC
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT ` + userColumns + `
		FROM users
		WHERE id = ?
	`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given id is stored.
func (r *UserReadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`)

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logQuery(query, []any{id}, exists, err)

	return exists, err
}

type UserWriteRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db, now: now}
}

// Create inserts a user and returns its identity.
// A duplicate email yields an error matching ErrUniqueViolation.
func (r *UserWriteRepository) Create(ctx context.Context, user models.NewUser) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO users (first_name, last_name, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	ts := r.now()
	// The raw password is stored until hashing is introduced upstream.
	args := []any{user.FirstName, user.LastName, user.Email, user.Password, ts, ts}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	// Never log the password placeholder.
	logQuery(query, []any{user.FirstName, user.LastName, user.Email, "***", ts, ts}, id, err)

	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// now is the store clock, truncated to the precision every supported driver keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
