package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountMocks struct {
	users  *MockUserProber
	reader *MockAccountReader
	writer *MockAccountWriter
	kafka  *MockKafkaWriter
}

func newAccountMocks(ctrl *gomock.Controller) accountMocks {
	return accountMocks{
		users:  NewMockUserProber(ctrl),
		reader: NewMockAccountReader(ctrl),
		writer: NewMockAccountWriter(ctrl),
		kafka:  NewMockKafkaWriter(ctrl),
	}
}

func (m accountMocks) service() *AccountService {
	return NewAccountService(m.users, m.reader, m.writer, m.kafka)
}

func TestAccountService_ListAccountsForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("user missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		m.users.EXPECT().Exists(ctx, int64(9999)).Return(false, nil)

		got, err := m.service().ListAccountsForUser(ctx, 9999)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, got)
	})

	t.Run("existence check fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		m.users.EXPECT().Exists(ctx, int64(1)).Return(false, errors.New("db down"))

		_, err := m.service().ListAccountsForUser(ctx, 1)
		assert.EqualError(t, err, "db down")
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		accounts := []models.AccountDB{{ID: 1, UserID: 1}, {ID: 2, UserID: 1}}
		gomock.InOrder(
			m.users.EXPECT().Exists(ctx, int64(1)).Return(true, nil),
			m.reader.EXPECT().ListByUserID(ctx, int64(1)).Return(accounts, nil),
		)

		got, err := m.service().ListAccountsForUser(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, accounts, got)
	})
}

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	input := models.NewAccount{Type: "checking", Status: "active", Balance: 0}

	t.Run("foreign key violation maps to user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		// The insert is the only store call; the user is not looked up again.
		m.writer.EXPECT().Create(ctx, int64(9999), input).Return(nil, repositories.ErrForeignKeyViolation)

		got, err := m.service().CreateAccount(ctx, 9999, input)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, got)
	})

	t.Run("insert failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		m.writer.EXPECT().Create(ctx, int64(1), input).Return(nil, errors.New("disk full"))

		_, err := m.service().CreateAccount(ctx, 1, input)
		assert.EqualError(t, err, "disk full")
	})

	t.Run("success publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		created := &models.AccountDB{ID: 11, UserID: 1, Type: "checking", Status: "active"}
		m.writer.EXPECT().Create(ctx, int64(1), input).Return(created, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "11", string(msgs[0].Key))

				var event models.AccountEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.AccountCreated, event.Operation)
				assert.Equal(t, int64(11), event.Account.ID)
				assert.NotEmpty(t, event.EventID)
				return nil
			})

		got, err := m.service().CreateAccount(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("publish failure does not fail request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		created := &models.AccountDB{ID: 12, UserID: 1}
		m.writer.EXPECT().Create(ctx, int64(1), input).Return(created, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		got, err := m.service().CreateAccount(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("without kafka writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		created := &models.AccountDB{ID: 13, UserID: 1}
		m.writer.EXPECT().Create(ctx, int64(1), input).Return(created, nil)

		svc := NewAccountService(m.users, m.reader, m.writer, nil)
		got, err := svc.CreateAccount(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})
}

func TestAccountService_PatchAccount(t *testing.T) {
	ctx := context.Background()
	patch := models.AccountPatch{{Field: models.AccountFieldType, Value: "savings"}}

	t.Run("update then re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		updated := &models.AccountDB{ID: 5, UserID: 1, Type: "savings", Status: "active", Balance: 3}
		gomock.InOrder(
			m.writer.EXPECT().Update(ctx, int64(5), patch).Return(nil),
			m.reader.EXPECT().GetByID(ctx, int64(5)).Return(updated, nil),
			m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
		)

		got, err := m.service().PatchAccount(ctx, 5, patch)
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("account missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		// A zero-row update is the only not found signal; the account is not looked up again.
		m.writer.EXPECT().Update(ctx, int64(5), patch).Return(sql.ErrNoRows)

		got, err := m.service().PatchAccount(ctx, 5, patch)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, got)
	})

	t.Run("vanished before re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		m.writer.EXPECT().Update(ctx, int64(5), patch).Return(nil)
		m.reader.EXPECT().GetByID(ctx, int64(5)).Return(nil, nil)

		_, err := m.service().PatchAccount(ctx, 5, patch)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("update fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		m.writer.EXPECT().Update(ctx, int64(5), patch).Return(errors.New("locked"))

		_, err := m.service().PatchAccount(ctx, 5, patch)
		assert.EqualError(t, err, "locked")
	})

	t.Run("re-read fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newAccountMocks(ctrl)

		m.writer.EXPECT().Update(ctx, int64(5), patch).Return(nil)
		m.reader.EXPECT().GetByID(ctx, int64(5)).Return(nil, errors.New("timeout"))

		_, err := m.service().PatchAccount(ctx, 5, patch)
		assert.EqualError(t, err, "timeout")
	})
}

func TestAccountService_AccountExists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newAccountMocks(ctrl)

	m.reader.EXPECT().Exists(ctx, int64(1)).Return(true, nil)

	ok, err := m.service().AccountExists(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok)
}
