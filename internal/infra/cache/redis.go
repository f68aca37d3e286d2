package cache

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/config"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func New(cfg *config.Config) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: rdb}, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *RedisCache) SetWithRandomTTL(ctx context.Context, key string, value interface{}, baseTTL time.Duration) error {
	// 在基础TTL上增加±10%的随机浮动
	jitter := time.Duration(rand.Int63n(int64(baseTTL/5)) - int64(baseTTL/10))
	actualTTL := baseTTL + jitter

	// 确保TTL不会变成负数
	if actualTTL < 0 {
		actualTTL = baseTTL
	}

	return c.client.Set(ctx, key, value, actualTTL).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// IsNil 区分 "key 不存在" 和真正的 Redis 错误
func IsNil(err error) bool {
	return err == redis.Nil
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCache) AllowRequest(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	// Lua 脚本：计数 + 首次过期设置
	// 逻辑：如果 key 不存在，INCR 并 EXPIRE；如果存在，只 INCR
	const script = `
        local current = redis.call("INCR", KEYS[1])
        if tonumber(current) == 1 then
            redis.call("EXPIRE", KEYS[1], ARGV[1])
        end
        return current
    `

	count, err := c.client.Eval(ctx, script, []string{key}, int(window.Seconds())).Int()
	if err != nil {
		return true, err
	}

	return count <= limit, nil
}
