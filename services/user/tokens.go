package user

import (
	"context"

	"consultly/utils"
)

// TokenStore tracks issued token hashes so the auth middleware can
// validate from cache and logout can revoke the cached identity.
type TokenStore interface {
	Prime(ctx context.Context, token, userID string) error
	Revoke(ctx context.Context, token string) error
}

type redisTokenStore struct{}

// NewRedisTokenStore builds the production token store backed by the
// dedicated auth Redis DB.
func NewRedisTokenStore() TokenStore {
	return redisTokenStore{}
}

func (redisTokenStore) Prime(ctx context.Context, token, userID string) error {
	key := utils.AuthCachePrefix + utils.HashToken(token)
	return utils.GetAuthCacheClient().Set(ctx, key, userID, utils.AuthCacheTTL).Err()
}

func (redisTokenStore) Revoke(ctx context.Context, token string) error {
	key := utils.AuthCachePrefix + utils.HashToken(token)
	return utils.GetAuthCacheClient().Del(ctx, key).Err()
}
