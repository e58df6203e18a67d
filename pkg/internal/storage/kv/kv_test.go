package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/mshahid/portfolio-server/pkg/internal/storage/kv"
)

// newMemoryStore 创建内存 KV 实例.
func newMemoryStore(t *testing.T) kv.KVStore {
	t.Helper()

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })

	return store
}

// TestMemoryKVBasic 测试基础的读写删与存在性检查.
func TestMemoryKVBasic(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if string(got) != "v1" {
		t.Errorf("expected v1, got %q", got)
	}

	exists, err := store.Exists(ctx, "k1")
	if err != nil || !exists {
		t.Errorf("expected key to exist, got %v %v", exists, err)
	}

	keys, err := store.Keys(ctx, "")
	if err != nil || len(keys) != 1 {
		t.Errorf("expected 1 key, got %v %v", keys, err)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(ctx, "k1"); err == nil {
		t.Error("expected error after delete")
	}
}

// TestMemoryKVTTL 测试带 TTL 的键在过期后不可见.
func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	if err := store.Set(ctx, "ephemeral", []byte("x"), time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, err := store.Get(ctx, "ephemeral"); err != nil {
		t.Fatalf("expected key before expiry, got %v", err)
	}

	time.Sleep(1200 * time.Millisecond)

	if _, err := store.Get(ctx, "ephemeral"); err == nil {
		t.Error("expected expired key to be gone")
	}

	exists, err := store.Exists(ctx, "ephemeral")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}

	if exists {
		t.Error("expected expired key to not exist")
	}
}

// TestMemoryKVOverwrite 测试同键覆盖取最新值.
func TestMemoryKVOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	_ = store.Set(ctx, "k", []byte("old"), 0)
	_ = store.Set(ctx, "k", []byte("new"), 0)

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if string(got) != "new" {
		t.Errorf("expected new, got %q", got)
	}
}
