// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velora-app/velora/internal/platform/apperr"
	"github.com/velora-app/velora/internal/platform/constants"
)

// # Reset Token Repository

// RedisResetTokenRepository implements ResetTokenRepository using Redis.
//
// Each token is stored twice: token -> userID for resolution, and a reverse
// userID -> token key so that all outstanding tokens for an account can be
// invalidated when the password changes.
type RedisResetTokenRepository struct {
	client *redis.Client
}

// NewResetTokenRepository creates a new Redis-backed ResetTokenRepository.
func NewResetTokenRepository(client *redis.Client) *RedisResetTokenRepository {
	return &RedisResetTokenRepository{client: client}
}

func resetTokenKey(token string) string {
	return constants.RedisPrefixResetToken + token
}

func resetUserKey(userID string) string {
	return constants.RedisPrefixResetToken + "user:" + userID
}

/*
Set stores a reset token with its associated userID and TTL.

Parameters:
  - context: context.Context
  - token: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisResetTokenRepository) Set(context context.Context, token string, userID string, ttl time.Duration) error {

	// Set the token with TTL
	if err := repository.client.Set(context, resetTokenKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_reset_token_set_failed: %w", err)
	}

	// Keep the reverse mapping on the same TTL
	if err := repository.client.Set(context, resetUserKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis_reset_token_set_reverse_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Get retrieves the userID for a given token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - string: Original UserID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisResetTokenRepository) Get(context context.Context, token string) (string, error) {

	// Get the token from Redis
	userID, err := repository.client.Get(context, resetTokenKey(token)).Result()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Reset token is invalid or expired")
		}
		return "", fmt.Errorf("redis_reset_token_get_failed: %w", err)
	}

	// Return the userID
	return userID, nil
}

/*
Delete removes the token and its reverse mapping from Redis.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisResetTokenRepository) Delete(context context.Context, token string) error {

	// Resolve the owner so the reverse key can be cleared too
	userID, err := repository.client.Get(context, resetTokenKey(token)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis_reset_token_resolve_failed: %w", err)
	}

	// Delete the token from Redis
	if err := repository.client.Del(context, resetTokenKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_reset_token_delete_failed: %w", err)
	}

	// Delete the reverse mapping if the owner was known
	if userID != "" {
		if err := repository.client.Del(context, resetUserKey(userID)).Err(); err != nil {
			return fmt.Errorf("redis_reset_token_delete_reverse_failed: %w", err)
		}
	}

	// Return nil on success
	return nil
}

/*
DeleteForUser invalidates any outstanding reset token issued to the user.

Description: Used on password change so stale reset links stop working.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisResetTokenRepository) DeleteForUser(context context.Context, userID string) error {

	// Look up the outstanding token via the reverse mapping
	token, err := repository.client.Get(context, resetUserKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("redis_reset_token_lookup_failed: %w", err)
	}

	// Delete both directions
	if err := repository.client.Del(context, resetTokenKey(token), resetUserKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis_reset_token_delete_for_user_failed: %w", err)
	}

	// Return nil on success
	return nil
}
