package store

import (
	"context"
	"net"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kogocampus/course-scraper/internal/config"
	"go.uber.org/zap"
)

// InitRedis connects to the configured redis instance and verifies the
// connection with a ping before handing the client out.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Hostname, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zap.S().Named("store").Errorf("failed to connect to redis at %s:%s: %v", cfg.Redis.Hostname, cfg.Redis.Port, err)
		return nil, err
	}

	return client, nil
}
