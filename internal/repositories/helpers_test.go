package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/stretchr/testify/require"
)

// openSQLite opens a named in-memory database with the schema applied.
func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open(context.Background(), DriverSQLite, "file:"+name+"?mode=memory&cache=shared", 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

// newMockDB returns an sqlx handle backed by sqlmock.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func createUser(t *testing.T, db *sqlx.DB, first, last, email string) int64 {
	t.Helper()

	id, err := NewUserWriteRepository(db).Create(context.Background(), models.NewUser{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  "secret1",
	})
	require.NoError(t, err)
	return id
}
