package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// RephraseCache stores legal-register rewrites keyed by a content hash so
// regenerating the same document does not re-bill the LLM.
type RephraseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Close() error
}

type rephraseCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewRephraseCache(log *logger.Logger) (RephraseCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttl := 7 * 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("REDIS_REPHRASE_TTL_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttl = time.Duration(parsed) * time.Second
		}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &rephraseCache{
		log: log.With("service", "RephraseCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *rephraseCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, "rephrase:"+key).Result()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("cache get failed", "error", err)
		}
		return "", false
	}
	return val, true
}

func (c *rephraseCache) Set(ctx context.Context, key, value string) {
	if err := c.rdb.Set(ctx, "rephrase:"+key, value, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "error", err)
	}
}

func (c *rephraseCache) Close() error {
	return c.rdb.Close()
}
