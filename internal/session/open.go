package session

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/al-qunnut/TicketFlow/internal/config"
)

// Open builds the session store selected by cfg.SessionBackend.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.SessionBackend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis (%s): %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
