package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

// UserCacheRepository keeps serialized user records in Redis.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a new cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get returns the cached user or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	key := userKey(id)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("cache get", "key", key, "hit", err == nil, "error", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, fmt.Errorf("decode cached user %d: %w", id, err)
	}
	return &user, nil
}

// Set stores the user with the repository TTL. The password hash is not cached.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}
