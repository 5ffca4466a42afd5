// Package redis wires a single shared redis.Client used by pkg/mmetrics to
// back the multi-instance-safe counters of C8.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

// Connection is a hub which deals with redis connections.
type Connection struct {
	ConnectionStringSource string
	Client                 *redis.Client
	Connected              bool
	Logger                 mlog.Logger
}

// Connect establishes a singleton connection with redis.
func (c *Connection) Connect(ctx context.Context) error {
	c.Logger.Info("connecting to redis...")

	opts, err := redis.ParseURL(c.ConnectionStringSource)
	if err != nil {
		return err
	}

	rdb := redis.NewClient(opts)

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		c.Logger.Errorf("redis ping failed: %v", err)
		return err
	}

	c.Logger.Info("connected to redis")

	c.Connected = true
	c.Client = rdb

	return nil
}

// GetClient returns the redis client, connecting lazily if necessary.
func (c *Connection) GetClient(ctx context.Context) (*redis.Client, error) {
	if c.Client == nil {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return c.Client, nil
}
