// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache. Keys embed the
// fingerprint of the site document, so pages rendered from an older
// document are never served after a restart with new configuration.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// PageKey returns the cache key for path rendered from the document with
// the given fingerprint.
func PageKey(fingerprint, path string) string {
	return pageKeyPrefix + fingerprint + ":" + path
}

// Get retrieves cached HTML. Errors are logged and reported as a miss.
func (pc *PageCache) Get(ctx context.Context, fingerprint, path string) ([]byte, bool) {
	key := PageKey(fingerprint, path)
	val, err := pc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, fingerprint, path string, html []byte) {
	key := PageKey(fingerprint, path)
	if err := pc.client.Set(ctx, key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// PurgeStale removes cached pages rendered from any document other than
// the one with the given fingerprint. Pass an empty fingerprint to remove
// every cached page. Returns the number of keys deleted.
func (pc *PageCache) PurgeStale(ctx context.Context, fingerprint string) int {
	keep := ""
	if fingerprint != "" {
		keep = pageKeyPrefix + fingerprint + ":"
	}

	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return deleted
		}

		stale := keys[:0]
		for _, k := range keys {
			if keep == "" || !strings.HasPrefix(k, keep) {
				stale = append(stale, k)
			}
		}
		if len(stale) > 0 {
			if err := pc.client.Del(ctx, stale...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			} else {
				deleted += len(stale)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("stale pages purged from cache", "deleted", deleted)
	}
	return deleted
}
