// Package transport is the boundary between the graph session and the network. It sends commands and hands back
// replies as generic wire.Value trees.
package transport

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/specterops/redisgraph/wire"
)

// Conn executes a single command and returns its reply. Implementations are not required to be safe for concurrent
// use by more than one session.
type Conn interface {
	Do(ctx context.Context, args ...any) (wire.Value, error)
	Close() error
}

type redisConn struct {
	client redis.UniversalClient
}

// NewRedisConn wraps an existing go-redis client. The client must speak RESP2 so that replies arrive as nested arrays
// of integers and bulk strings.
func NewRedisConn(client redis.UniversalClient) Conn {
	return &redisConn{
		client: client,
	}
}

func (s *redisConn) Do(ctx context.Context, args ...any) (wire.Value, error) {
	if reply, err := s.client.Do(ctx, args...).Result(); err != nil {
		if wire.IsNilReply(err) {
			return wire.Nil(), nil
		}

		return wire.Value{}, err
	} else {
		return wire.FromReply(reply)
	}
}

func (s *redisConn) Close() error {
	return s.client.Close()
}

// Options builds go-redis client options from the given configuration.
func Options(cfg Config) (*redis.Options, error) {
	options, err := redis.ParseURL(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	// Compact graph replies are decoded from RESP2 arrays
	options.Protocol = 2

	if cfg.PoolSize > 0 {
		options.PoolSize = cfg.PoolSize
	}

	if cfg.DialTimeout > 0 {
		options.DialTimeout = cfg.DialTimeout
	}

	if cfg.ReadTimeout > 0 {
		options.ReadTimeout = cfg.ReadTimeout
	}

	if cfg.WriteTimeout > 0 {
		options.WriteTimeout = cfg.WriteTimeout
	}

	return options, nil
}

// Dial opens a client for the given configuration and verifies that the server answers.
func Dial(ctx context.Context, cfg Config) (Conn, error) {
	options, err := Options(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach %s: %w", options.Addr, err)
	}

	return NewRedisConn(client), nil
}
