package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected set error %v", err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected get error %v", err)
	}
	if string(got) != "v" {
		t.Fatalf("expected v, got %s", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()
	if _, err := c.Get(context.Background(), "missing"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestMemoryCacheExpires(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), 10*time.Minute)

	now = now.Add(9 * time.Minute)
	if _, err := c.Get(ctx, "k"); err != nil {
		t.Fatalf("expected entry before ttl, got %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss at ttl, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(context.Background(), "k", []byte("v"), 0)
	now = now.Add(24 * time.Hour)
	if _, err := c.Get(context.Background(), "k"); err != nil {
		t.Fatalf("expected entry without ttl to persist, got %v", err)
	}
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	value := []byte("original")
	_ = c.Set(ctx, "k", value, time.Minute)

	value[0] = 'X'
	got, _ := c.Get(ctx, "k")
	got[1] = 'Y'

	again, _ := c.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("expected cache to remain unchanged, got %s", again)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	_ = c.Delete(ctx, "a", "missing")

	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected a to be deleted")
	}
	if _, err := c.Get(ctx, "b"); err != nil {
		t.Fatalf("expected b to remain, got %v", err)
	}
}
