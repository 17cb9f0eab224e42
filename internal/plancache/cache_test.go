package plancache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/swift-nav/rules-swiftnav-test/internal/rules"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenAt(filepath.Join(t.TempDir(), "swiftdeck"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	return c
}

func sampleRules() []rules.Rule {
	return []rules.Rule{
		{Kind: rules.KindLibrary, Spec: rules.TargetSpec{Name: "core", Copts: []string{"-Wall", "-pedantic"}}},
		{Kind: rules.KindTest, Spec: rules.TargetSpec{Name: "core_test", Tags: []string{"unit"}}},
	}
}

func TestCache_PutGet(t *testing.T) {
	c := testCache(t)
	key := Key([]byte("manifest-v1"))

	if err := c.Put(key, "nav", sampleRules()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, hit, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, sampleRules()) {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := testCache(t)
	_, hit, err := c.Get(Key([]byte("never stored")))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_KeyChangesWithContent(t *testing.T) {
	a := Key([]byte("manifest-v1"))
	b := Key([]byte("manifest-v2"))
	if a == b {
		t.Error("different manifests produced the same key")
	}

	c := testCache(t)
	if err := c.Put(a, "nav", sampleRules()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, hit, _ := c.Get(b); hit {
		t.Error("edited manifest must not hit the stale entry")
	}
}

func TestCache_CorruptEntryIsAMiss(t *testing.T) {
	c := testCache(t)
	key := Key([]byte("manifest-v1"))
	if err := c.Put(key, "nav", sampleRules()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := os.WriteFile(c.pathFor(key), []byte("not msgpack"), 0o644); err != nil {
		t.Fatalf("failed to corrupt entry: %v", err)
	}
	_, hit, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get on corrupt entry errored: %v", err)
	}
	if hit {
		t.Error("corrupt entry must read as a miss")
	}
}

func TestCache_DropAll(t *testing.T) {
	c := testCache(t)
	key := Key([]byte("manifest-v1"))
	if err := c.Put(key, "nav", sampleRules()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if _, hit, _ := c.Get(key); hit {
		t.Error("expected miss after DropAll")
	}
}

func TestCache_NilReceiverIsNoop(t *testing.T) {
	var c *Cache
	if err := c.Put(Key(nil), "nav", nil); err != nil {
		t.Errorf("nil Put errored: %v", err)
	}
	if _, hit, err := c.Get(Key(nil)); hit || err != nil {
		t.Errorf("nil Get: hit=%v err=%v", hit, err)
	}
	if err := c.DropAll(); err != nil {
		t.Errorf("nil DropAll errored: %v", err)
	}
}
