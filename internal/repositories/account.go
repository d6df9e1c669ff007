package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

const accountColumns = `id, user_id, type, status, balance, created_at, updated_at`

// patchableColumns maps the fields a partial update may touch to their columns.
var patchableColumns = map[models.AccountField]string{
	models.AccountFieldType:    "type",
	models.AccountFieldStatus:  "status",
	models.AccountFieldBalance: "balance",
}

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// ListByUserID returns the accounts of one user ordered by id.
func (r *AccountReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.AccountDB, error) {
	query := r.db.Rebind(`
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = ?
		ORDER BY id ASC
	`)

	accounts := []models.AccountDB{}
	err := r.db.SelectContext(ctx, &accounts, query, userID)

	logQuery(query, []any{userID}, len(accounts), err)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetByID returns the account or nil when no row matches.
func (r *AccountReadRepository) GetByID(ctx context.Context, id int64) (*models.AccountDB, error) {
	query := r.db.Rebind(`
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = ?
	`)

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, id)

	logQuery(query, []any{id}, account, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Exists reports whether an account with the given id is stored.
func (r *AccountReadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := r.db.Rebind(`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = ?)`)

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logQuery(query, []any{id}, exists, err)

	return exists, err
}

// AccountWriteRepository handles account write operations.
type AccountWriteRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, now: now}
}

// Create inserts an account for userID and returns the stored record.
func (r *AccountWriteRepository) Create(ctx context.Context, userID int64, account models.NewAccount) (*models.AccountDB, error) {
	query := r.db.Rebind(`
		INSERT INTO accounts (user_id, type, status, balance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	ts := r.now()
	args := []any{userID, account.Type, account.Status, account.Balance, ts, ts}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		return nil, translateError(err)
	}

	return &models.AccountDB{
		ID:        id,
		UserID:    userID,
		Type:      account.Type,
		Status:    account.Status,
		Balance:   account.Balance,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Update applies the given changes in one statement and refreshes updated_at.
// It returns sql.ErrNoRows when the account does not exist.
func (r *AccountWriteRepository) Update(ctx context.Context, id int64, patch models.AccountPatch) error {
	if len(patch) == 0 {
		return errors.New("empty account patch")
	}

	sets := make([]string, 0, len(patch)+1)
	args := make([]any, 0, len(patch)+2)
	for _, change := range patch {
		column, ok := patchableColumns[change.Field]
		if !ok {
			return fmt.Errorf("account field %q cannot be updated", change.Field)
		}
		sets = append(sets, column+" = ?")
		args = append(args, change.Value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, r.now(), id)

	query := r.db.Rebind(`UPDATE accounts SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
