//go:build integration

package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisAddr returns the address of the test Redis instance. It checks
// FWAUDIT_TEST_REDIS_ADDR, falling back to localhost.
func RedisAddr() string {
	if addr := os.Getenv("FWAUDIT_TEST_REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// TestRedisDB is the database number reserved for integration tests.
const TestRedisDB = 9

// SkipIfNoRedis skips the test if the test Redis is not reachable.
func SkipIfNoRedis(t *testing.T) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: RedisAddr(), DB: TestRedisDB})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("test Redis not reachable at %s: %v", RedisAddr(), err)
	}
}

// FlushTestDB flushes the test database. Registers no cleanup; call it
// at the start of each test so failures leave state behind for inspection.
func FlushTestDB(t *testing.T) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: RedisAddr(), DB: TestRedisDB})
	defer client.Close()

	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flushing test DB %d: %v", TestRedisDB, err)
	}
}
