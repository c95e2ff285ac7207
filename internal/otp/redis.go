package otp

import (
	"encoding/json"

	"github.com/go-redis/redis"
)

const keyPrefix = "signup:"

// RedisStore 把待验证注册数据写入 Redis，TTL 与验证码有效期一致，
// 过期记录由 Redis 自动清理。
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis backed pending-signup store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(email string, pending PendingSignup) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.client.Set(keyPrefix+email, data, Expiry).Err()
}

func (s *RedisStore) Get(email string) (PendingSignup, error) {
	data, err := s.client.Get(keyPrefix + email).Bytes()
	if err == redis.Nil {
		return PendingSignup{}, ErrPendingNotFound
	}
	if err != nil {
		return PendingSignup{}, err
	}

	var pending PendingSignup
	if err := json.Unmarshal(data, &pending); err != nil {
		return PendingSignup{}, err
	}
	return pending, nil
}

func (s *RedisStore) Delete(email string) error {
	return s.client.Del(keyPrefix + email).Err()
}
