package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
)

type payload struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func newTestBolt(t *testing.T) (*storage.Bolt, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pos.db")
	b, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open blob store: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b, path
}

func TestBoltRoundTrip(t *testing.T) {
	b, _ := newTestBolt(t)

	in := payload{Name: "tee", N: 3}
	if err := b.Put(storage.KeyItems, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out payload
	found, err := b.Get(storage.KeyItems, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found")
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestBoltMissingKey(t *testing.T) {
	b, _ := newTestBolt(t)

	var out payload
	found, err := b.Get("absent", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected key to be absent")
	}
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.db")
	b, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := b.Put(storage.KeySettings, payload{Name: "settings", N: 8}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var out payload
	found, err := reopened.Get(storage.KeySettings, &out)
	if err != nil || !found {
		t.Fatalf("get after reopen: found=%v err=%v", found, err)
	}
	if out.N != 8 {
		t.Fatalf("expected n=8, got %d", out.N)
	}
}

func TestMemoryCorruptBlobSurfacesError(t *testing.T) {
	m := storage.NewMemory()
	m.PutRaw(storage.KeyItems, []byte("{not json"))

	var out payload
	found, err := m.Get(storage.KeyItems, &out)
	if !found {
		t.Fatal("expected key to be found")
	}
	if err == nil {
		t.Fatal("expected decode error for corrupt blob")
	}
}

func TestMemoryFailPuts(t *testing.T) {
	m := storage.NewMemory()
	m.FailPuts = true
	if err := m.Put(storage.KeyCart, payload{}); err == nil {
		t.Fatal("expected put to fail")
	}
}
