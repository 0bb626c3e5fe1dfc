package cache

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"
)

func TestKey_ValueEquality(t *testing.T) {
	a, err := Key("s", "op", map[string]any{"x": 1.0, "y": map[string]any{"b": true, "a": "s"}}, "fp")
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	b, _ := Key("s", "op", map[string]any{"y": map[string]any{"a": "s", "b": true}, "x": 1.0}, "fp")
	if a != b {
		t.Error("equal parameters should produce equal keys")
	}
}

func TestKey_Distinct(t *testing.T) {
	base, _ := Key("s", "op", map[string]any{"x": 1.0}, "fp")
	others := []struct {
		scope  string
		op     string
		params map[string]any
		fp     string
	}{
		{"s", "other", map[string]any{"x": 1.0}, "fp"},
		{"s", "op", map[string]any{"x": 2.0}, "fp"},
		{"s", "op", map[string]any{"x": 1.0}, "fp2"},
		{"s2", "op", map[string]any{"x": 1.0}, "fp"},
	}
	for i, o := range others {
		k, err := Key(o.scope, o.op, o.params, o.fp)
		if err != nil {
			t.Fatalf("Key() error = %v", err)
		}
		if k == base {
			t.Errorf("variation %d produced the same key", i)
		}
	}
}

func TestKey_Unencodable(t *testing.T) {
	if _, err := Key("s", "op", map[string]any{"x": math.NaN()}, "fp"); err == nil {
		t.Error("expected error for NaN parameter")
	}
}

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("empty cache should miss")
	}
	if err := m.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Errorf("Get() = %q, %v, %v", got, ok, err)
	}
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, "k", "v")
	now = now.Add(30 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("entry expired too early")
	}
	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("entry should have expired")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after expiry", m.Len())
	}
}

func TestMemory_SweepsExpiredOnSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	for i := 0; i < 500; i++ {
		_ = m.Set(ctx, fmt.Sprintf("k%d", i), "v")
	}
	if m.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", m.Len())
	}

	now = now.Add(2 * time.Minute)
	_ = m.Set(ctx, "fresh", "v")
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after expired entries are swept", m.Len())
	}
	if got, ok, _ := m.Get(ctx, "fresh"); !ok || got != "v" {
		t.Errorf("Get(fresh) = %q, %v", got, ok)
	}
}

func TestMemory_EvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0, WithMaxEntries(3))

	for _, k := range []string{"a", "b", "c"} {
		_ = m.Set(ctx, k, k)
	}
	_ = m.Set(ctx, "a", "a2")
	_ = m.Set(ctx, "d", "d")

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if _, ok, _ := m.Get(ctx, "b"); ok {
		t.Error("oldest entry b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok, _ := m.Get(ctx, k); !ok {
			t.Errorf("entry %s should still be present", k)
		}
	}
}

func TestMemory_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0, WithMaxEntries(-1))

	for i := 0; i < DefaultMaxEntries+10; i++ {
		_ = m.Set(ctx, fmt.Sprintf("k%d", i), "v")
	}
	if m.Len() != DefaultMaxEntries {
		t.Errorf("Len() = %d, want %d", m.Len(), DefaultMaxEntries)
	}
}

func TestNewRedis_RequiresClient(t *testing.T) {
	if _, err := NewRedis(RedisConfig{}); err == nil {
		t.Error("expected error without client")
	}
}
