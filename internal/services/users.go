package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/repositories"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

// Error variables
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.NewUser) (int64, error)
}

// UserCache is an optional read-through cache for single user lookups.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// UserService handles user listing, creation and lookup.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
}

// NewUserService creates a new UserService instance. cache may be nil.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// ListUsers returns all users ordered by last name, then first name.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// CreateUser stores a validated user and echoes its public fields.
func (svc *UserService) CreateUser(ctx context.Context, user models.NewUser) (*models.CreatedUser, error) {
	id, err := svc.writer.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("email already exists", "email", user.Email)
			return nil, ErrEmailTaken
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return nil, err
	}

	return &models.CreatedUser{
		ID:        id,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}

// GetUser returns one user, consulting the cache first when configured.
func (svc *UserService) GetUser(ctx context.Context, id int64) (*models.UserDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("user cache read failed", "userID", id, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("user cache write failed", "userID", id, "err", err)
		}
	}
	return user, nil
}

// UserExists probes for a user without fetching its columns.
func (svc *UserService) UserExists(ctx context.Context, id int64) (bool, error) {
	exists, err := svc.reader.Exists(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "userID", id, "err", err)
		return false, err
	}
	return exists, nil
}
