package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=accounts.go -destination=accounts_mock.go -package=services

// UserProber checks that a user exists.
type UserProber interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.AccountDB, error)
	GetByID(ctx context.Context, id int64) (*models.AccountDB, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Create(ctx context.Context, userID int64, account models.NewAccount) (*models.AccountDB, error)
	Update(ctx context.Context, id int64, patch models.AccountPatch) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AccountService handles account operations and event publishing.
type AccountService struct {
	users       UserProber
	reader      AccountReader
	writer      AccountWriter
	kafkaWriter KafkaWriter
}

// NewAccountService creates a new AccountService. kafkaWriter may be nil.
func NewAccountService(
	users UserProber,
	reader AccountReader,
	writer AccountWriter,
	kafkaWriter KafkaWriter,
) *AccountService {
	return &AccountService{
		users:       users,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an account event to Kafka.
func (s *AccountService) publishEvent(ctx context.Context, operation string, account models.AccountDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "operation", operation, "accountID", account.ID)
		return
	}

	event := models.AccountEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		Account:   account,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal account event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(account.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish account event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Account event published", "event_id", event.EventID, "operation", operation, "accountID", account.ID)
	}
}

// ensureUser returns ErrUserNotFound when the user is absent.
func (s *AccountService) ensureUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "userID", userID, "error", err)
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

// ListAccountsForUser returns the user's accounts ordered by id.
func (s *AccountService) ListAccountsForUser(ctx context.Context, userID int64) ([]models.AccountDB, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	accounts, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list accounts", "userID", userID, "error", err)
		return nil, err
	}
	return accounts, nil
}

// CreateAccount stores a validated account. Callers check the user first with
// UserExists; a user missing at insert time is reported by the foreign key as
// ErrUserNotFound.
func (s *AccountService) CreateAccount(ctx context.Context, userID int64, account models.NewAccount) (*models.AccountDB, error) {
	created, err := s.writer.Create(ctx, userID, account)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to create account", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.AccountCreated, *created)
	return created, nil
}

// AccountExists probes for an account without fetching its columns.
func (s *AccountService) AccountExists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.reader.Exists(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "accountID", id, "error", err)
		return false, err
	}
	return exists, nil
}

// PatchAccount applies a partial update and returns the re-read record.
// Callers check the account first with AccountExists; an update touching no
// row yields ErrAccountNotFound.
//
// The update and the re-read are separate statements with no transaction
// around them: a concurrent writer landing in between is reflected in the
// returned record.
func (s *AccountService) PatchAccount(ctx context.Context, id int64, patch models.AccountPatch) (*models.AccountDB, error) {
	if err := s.writer.Update(ctx, id, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		logger.Log.Errorw("failed to update account", "accountID", id, "error", err)
		return nil, err
	}

	account, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read updated account", "accountID", id, "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	s.publishEvent(ctx, models.AccountUpdated, *account)
	return account, nil
}
