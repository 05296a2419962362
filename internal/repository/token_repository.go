package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenRepository tracks issued refresh tokens in Redis so they can be
// revoked before their JWT expiry. A refresh token that is absent here is
// treated as invalid even when its signature still verifies.
type TokenRepository struct {
	RDB *redis.Client
}

func NewTokenRepository(rdb *redis.Client) *TokenRepository {
	return &TokenRepository{RDB: rdb}
}

func tokenKey(token string) string {
	return "refresh_token:" + token
}

func (r *TokenRepository) Store(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return r.RDB.Set(ctx, tokenKey(token), fmt.Sprintf("%d", userID), ttl).Err()
}

func (r *TokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.RDB.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	return r.RDB.Del(ctx, tokenKey(token)).Err()
}
