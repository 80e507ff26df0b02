package repository

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss on empty cache")
	}
	if err := c.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := c.Get(ctx, "k")
	if !ok || v != "v2" {
		t.Errorf("Get = %q, %v; want v2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestRedisCacheUnreachableServerIsAMiss(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1", time.Minute, zap.NewNop())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected miss when redis is unreachable")
	}
	if err := c.Set(ctx, "k", "v"); err == nil {
		t.Error("expected Set to fail when redis is unreachable")
	}
	if err := c.Ping(ctx); err == nil {
		t.Error("expected Ping to fail when redis is unreachable")
	}
}
