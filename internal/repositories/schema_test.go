package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	createUser(t, db, "Ann", "Able", "ann@example.com")

	require.NoError(t, EnsureSchema(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 1, count)
}

func TestEnsureSchema_RejectsNegativeBalance(t *testing.T) {
	db := openSQLite(t)

	userID := createUser(t, db, "Ann", "Able", "ann@example.com")

	_, err := db.Exec(`INSERT INTO accounts (user_id, type, status, balance) VALUES (?, 'checking', 'active', -1)`, userID)
	assert.Error(t, err)
}

func TestEnsureSchema_ExecError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("read-only database"))

	err := EnsureSchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensure schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "root@/db", 1, 1)
	assert.Error(t, err)
}

func TestWithParam(t *testing.T) {
	assert.Equal(t, "bank.db?_foreign_keys=on", withParam("bank.db", "_foreign_keys", "on"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withParam("file:x?mode=memory", "_foreign_keys", "on"))
	assert.Equal(t, "bank.db?_foreign_keys=off", withParam("bank.db?_foreign_keys=off", "_foreign_keys", "on"))
}
