package db

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	FeedbackCounterKey = "finrag:feedback:incorrect_count"
	LastSeenHashKey    = "finrag:dedup:last_seen"
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// IncrFeedbackCounter adjusts the incorrect-response counter and returns
// the new value. Negative deltas are allowed (thumbs up).
func IncrFeedbackCounter(delta int64) (int64, error) {
	return Redis.IncrBy(Ctx, FeedbackCounterKey, delta).Result()
}

func GetFeedbackCounter() (int64, error) {
	n, err := Redis.Get(Ctx, FeedbackCounterKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// RedisLastSeen is a pipeline.LastSeenStore backed by a Redis hash, so
// dedup state survives fetcher restarts.
type RedisLastSeen struct{}

func (RedisLastSeen) Get(source string) (string, error) {
	id, err := Redis.HGet(Ctx, LastSeenHashKey, source).Result()
	if err == redis.Nil {
		return "", nil
	}
	return id, err
}

func (RedisLastSeen) Set(source, id string) error {
	return Redis.HSet(Ctx, LastSeenHashKey, source, id).Err()
}
