package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "popular:"), mr
}

func TestCacheHelper_SetGet(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	type entry struct {
		ClassName string `json:"className"`
		Count     int64  `json:"count"`
	}

	want := []entry{{ClassName: "Violin", Count: 5}, {ClassName: "Piano", Count: 3}}
	if err := helper.Set(ctx, "top", want, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got []entry
	if err := helper.Get(ctx, "top", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 2 || got[0].ClassName != "Violin" || got[0].Count != 5 {
		t.Fatalf("unexpected cached value: %+v", got)
	}
}

func TestCacheHelper_GetMiss(t *testing.T) {
	helper, _ := newTestHelper(t)

	var dest []string
	err := helper.Get(context.Background(), "absent", &dest)
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestCacheHelper_GetOrSet(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	loads := 0
	loader := func() (interface{}, error) {
		loads++
		return map[string]int{"seats": 4}, nil
	}

	var first map[string]int
	if err := helper.GetOrSet(ctx, "class:1", &first, time.Minute, loader); err != nil {
		t.Fatalf("GetOrSet (miss) failed: %v", err)
	}
	if first["seats"] != 4 {
		t.Fatalf("unexpected loaded value: %v", first)
	}

	var second map[string]int
	if err := helper.GetOrSet(ctx, "class:1", &second, time.Minute, loader); err != nil {
		t.Fatalf("GetOrSet (hit) failed: %v", err)
	}
	if loads != 1 {
		t.Fatalf("expected loader to run once, ran %d times", loads)
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper, mr := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "top:6", "a", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := helper.Set(ctx, "top:10", "b", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := helper.InvalidatePattern(ctx, "top:*"); err != nil {
		t.Fatalf("InvalidatePattern failed: %v", err)
	}
	if mr.Exists("popular:top:6") || mr.Exists("popular:top:10") {
		t.Fatal("expected keys to be invalidated")
	}
}

func TestSafeDelete(t *testing.T) {
	helper, mr := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "ada@example.com", "cached", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	SafeDelete(ctx, helper, "ada@example.com")
	if mr.Exists("popular:ada@example.com") {
		t.Fatal("expected key to be deleted")
	}

	// A dead backend must not surface an error to the mutation path.
	mr.Close()
	SafeDelete(ctx, helper, "ada@example.com")
}

func TestCacheHelper_Disabled(t *testing.T) {
	helper := NewCacheHelper(nil, "popular:")
	ctx := context.Background()

	if helper.Enabled() {
		t.Fatal("nil client should report disabled")
	}
	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set on disabled cache should be a no-op, got %v", err)
	}
	var dest string
	if err := helper.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss on disabled cache, got %v", err)
	}
}
