// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/internal/platform/constants"
)

// RedisLinkStore implements [LinkStore] with expiring Redis keys.
type RedisLinkStore struct {
	client *redis.Client
}

// NewRedisLinkStore creates a new Redis-backed [LinkStore].
func NewRedisLinkStore(client *redis.Client) *RedisLinkStore {
	return &RedisLinkStore{client: client}
}

func linkKey(token string) string {
	return fmt.Sprintf("%s%s", constants.RedisPrefixSermonExport, token)
}

/*
Save stores a download link under token.

Parameters:
  - context: context.Context
  - token: string
  - link: *Link
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (store *RedisLinkStore) Save(context context.Context, token string, link *Link, ttl time.Duration) error {
	payload, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("redis_export_link_encode_failed: %w", err)
	}

	if err := store.client.Set(context, linkKey(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_export_link_set_failed: %w", err)
	}
	return nil
}

/*
Load resolves a download token.

Description: Returns apperr.NotFound if the token is unknown or expired.

Returns:
  - *Link: The stored link
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisLinkStore) Load(context context.Context, token string) (*Link, error) {
	payload, err := store.client.Get(context, linkKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Export link")
		}
		return nil, fmt.Errorf("redis_export_link_get_failed: %w", err)
	}

	link := &Link{}
	if err := json.Unmarshal(payload, link); err != nil {
		return nil, fmt.Errorf("redis_export_link_decode_failed: %w", err)
	}
	return link, nil
}

// Delete revokes a download token.
func (store *RedisLinkStore) Delete(context context.Context, token string) error {
	if err := store.client.Del(context, linkKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_export_link_del_failed: %w", err)
	}
	return nil
}
