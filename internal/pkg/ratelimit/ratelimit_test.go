package ratelimit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/assethub/hub-api/internal/pkg/ratelimit"
)

func TestNilClientAllows(t *testing.T) {
	limiter := ratelimit.New(nil, "test", time.Hour)

	for i := 0; i < 5; i++ {
		if !limiter.Allow(context.Background(), "key", 1) {
			t.Fatal("expected nil-client limiter to always allow")
		}
	}
}

func TestZeroLimitAllows(t *testing.T) {
	limiter := ratelimit.New(nil, "test", time.Hour)

	if !limiter.Allow(context.Background(), "key", 0) {
		t.Fatal("expected zero limit to disable the cap")
	}
}

func TestWindowCap(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	limiter := ratelimit.New(client, fmt.Sprintf("test_%d", time.Now().UnixNano()), time.Hour)

	const limit = 3
	allowed := 0
	for i := 0; i < limit+2; i++ {
		if limiter.Allow(context.Background(), "asset", limit) {
			allowed++
		}
	}

	if allowed != limit {
		t.Fatalf("expected %d allowed, got %d", limit, allowed)
	}
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	return client
}
