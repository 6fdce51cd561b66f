package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects when uri is set. Without Redis the token blacklist,
// login throttling and background jobs are disabled.
func InitRedis(uri string) error {
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set. Redis features disabled.")
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     uri, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis: %w", err)
	}

	RedisClient = c
	log.Println("✅ Redis connected successfully")
	return nil
}
