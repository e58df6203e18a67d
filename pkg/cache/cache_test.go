package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mshahid/portfolio-server/pkg/cache"
)

// summaryFixture 测试用的聚合结构体.
type summaryFixture struct {
	TotalViews int64            `json:"totalViews"`
	ByPage     map[string]int64 `json:"byPage"`
}

// mockKVStore 模拟KV存储实现.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{data: make(map[string][]byte)}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, fmt.Errorf("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]
	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *mockKVStore) Close() error { return nil }

// TestCacheRoundTrip 测试泛型读写保持结构不变.
func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	in := summaryFixture{TotalViews: 42, ByPage: map[string]int64{"home": 30, "about": 12}}

	if err := cache.Set(ctx, c, "analytics:summary", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err := cache.Get[summaryFixture](ctx, c, "analytics:summary")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if out.TotalViews != in.TotalViews || out.ByPage["home"] != 30 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

// TestCacheGetMiss 测试未命中返回错误且不 panic.
func TestCacheGetMiss(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	if _, err := cache.Get[summaryFixture](ctx, c, "missing"); err == nil {
		t.Error("expected miss error")
	}
}

// TestGetOrSet 测试未命中时执行 getter 并回填.
func TestGetOrSet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	calls := 0
	getter := func() (summaryFixture, error) {
		calls++
		return summaryFixture{TotalViews: 7}, nil
	}

	v1, err := cache.GetOrSet(ctx, c, "k", getter, time.Minute)
	if err != nil || v1.TotalViews != 7 {
		t.Fatalf("first getOrSet: %v %+v", err, v1)
	}

	v2, err := cache.GetOrSet(ctx, c, "k", getter, time.Minute)
	if err != nil || v2.TotalViews != 7 {
		t.Fatalf("second getOrSet: %v %+v", err, v2)
	}

	if calls != 1 {
		t.Errorf("expected getter called once, got %d", calls)
	}
}

// TestCacheDeleteAndClear 测试删除与整体清空.
func TestCacheDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	_ = cache.Set(ctx, c, "a", 1, 0)
	_ = cache.Set(ctx, c, "b", 2, 0)

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	exists, _ := c.Exists(ctx, "a")
	if exists {
		t.Error("expected a to be deleted")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	exists, _ = c.Exists(ctx, "b")
	if exists {
		t.Error("expected b to be cleared")
	}
}
