package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

const (
	keyUser     = "hostel:session:user"
	keyToken    = "hostel:session:token"
	keyLoggedIn = "hostel:session:logged_in"
)

// RedisStore keeps the session in redis for deployments that already run one.
// Sessions carry no TTL; lifecycle is Save/Clear only.
type RedisStore struct {
	rdb *redis.Client
}

var _ ports.SessionStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, user *domain.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, keyUser, raw, 0)
	pipe.Set(ctx, keyToken, token, 0)
	pipe.Set(ctx, keyLoggedIn, "true", 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) User(ctx context.Context) (*domain.User, error) {
	raw, err := s.rdb.Get(ctx, keyUser).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	token, err := s.rdb.Get(ctx, keyToken).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *RedisStore) IsLoggedIn(ctx context.Context) (bool, error) {
	v, err := s.rdb.Get(ctx, keyLoggedIn).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (s *RedisStore) UpdateUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyUser, raw, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, keyUser, keyToken, keyLoggedIn).Err()
}
