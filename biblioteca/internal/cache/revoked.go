package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "revoked:"

// Config with an empty Addr disables the cache.
type Config struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB"`
}

func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return client, nil
}

// RevokedTokens keeps one key per looked-up jti: "1" while the token is revoked,
// "0" for a short while after the denylist said it was not.
type RevokedTokens struct {
	client redis.Cmdable
}

const (
	revoked = "1"
	active  = "0"
)

func NewRevokedTokens(client redis.Cmdable) *RevokedTokens {
	return &RevokedTokens{client: client}
}

func key(jti string) string {
	return revokedPrefix + jti
}

// Lookup returns found=false when nothing is cached for jti.
func (c *RevokedTokens) Lookup(ctx context.Context, jti string) (isRevoked, found bool, err error) {
	v, err := c.client.Get(ctx, key(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, errors.Wrap(err, "redis get")
	}
	return v == revoked, true, nil
}

// MarkRevoked is a no-op for tokens that have already expired.
func (c *RevokedTokens) MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return errors.Wrap(c.client.Set(ctx, key(jti), revoked, ttl).Err(), "redis set")
}

// MarkActive never overwrites a revocation written in the meantime.
func (c *RevokedTokens) MarkActive(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return errors.Wrap(c.client.SetNX(ctx, key(jti), active, ttl).Err(), "redis setnx")
}
