package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps logout blacklists and failed login counters in Redis.
// A nil client turns every operation into a no-op (development mode).
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func (s *TokenStore) BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error {
	if s.client == nil || expiresIn <= 0 {
		return nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	if err := s.client.Set(ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func (s *TokenStore) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	_, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

// RecordFailedLogin counts a failed attempt inside window and returns the
// running count.
func (s *TokenStore) RecordFailedLogin(ctx context.Context, email string, window time.Duration) (int64, error) {
	if s.client == nil {
		return 0, nil
	}
	key := loginKey(email)
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count login attempt: %v", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return n, fmt.Errorf("failed to expire login counter: %v", err)
		}
	}
	return n, nil
}

// LoginCooldown returns how long email stays locked, zero when it is not.
func (s *TokenStore) LoginCooldown(ctx context.Context, email string, maxAttempts int64) (time.Duration, error) {
	if s.client == nil {
		return 0, nil
	}
	key := loginKey(email)
	n, err := s.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read login counter: %v", err)
	}
	if n < maxAttempts {
		return 0, nil
	}
	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read login cooldown: %v", err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

func (s *TokenStore) ResetLogin(ctx context.Context, email string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, loginKey(email)).Err()
}

func loginKey(email string) string {
	return "login_attempts:" + strings.ToLower(email)
}
