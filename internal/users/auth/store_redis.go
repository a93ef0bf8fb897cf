// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/constants"
)

// RedisTokenDenylist implements TokenDenylist using Redis key expiry.
type RedisTokenDenylist struct {
	client redis.Cmdable
}

// NewRedisTokenDenylist creates a new Redis-backed TokenDenylist.
func NewRedisTokenDenylist(client redis.Cmdable) *RedisTokenDenylist {
	return &RedisTokenDenylist{client: client}
}

func revokedTokenKey(tokenID string) string {
	return constants.RedisPrefixRevokedToken + tokenID
}

/*
Revoke stores the token ID until the token would have expired anyway.

Parameters:
  - context: context.Context
  - tokenID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (denylist *RedisTokenDenylist) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := denylist.client.Set(context, revokedTokenKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_denylist_revoke_failed: %w", err)
	}

	return nil
}

/*
IsRevoked checks whether a token ID is on the denylist.

Parameters:
  - context: context.Context
  - tokenID: string

Returns:
  - bool: true when revoked
  - error: Connectivity errors
*/
func (denylist *RedisTokenDenylist) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := denylist.client.Exists(context, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_token_denylist_lookup_failed: %w", err)
	}

	return count > 0, nil
}
