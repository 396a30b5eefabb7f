package storage

import (
	"encoding/json"
	"fmt"
)

// Memory is a map-backed Blobs implementation. It serves as the in-memory
// fallback when the database file is unavailable, and as the fixture store
// in tests. Values are round-tripped through JSON so behavior matches the
// file-backed store.
type Memory struct {
	blobs map[string][]byte

	// FailPuts, when set, makes every Put return an error. Used to exercise
	// the swallowed-persistence-failure path.
	FailPuts bool
}

// NewMemory returns an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Get implements Blobs.
func (m *Memory) Get(key string, dest any) (bool, error) {
	raw, ok := m.blobs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, fmt.Errorf("get %q: %w", key, err)
	}
	return true, nil
}

// Put implements Blobs.
func (m *Memory) Put(key string, v any) error {
	if m.FailPuts {
		return fmt.Errorf("put %q: store unavailable", key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	m.blobs[key] = data
	return nil
}

// Close implements Blobs.
func (m *Memory) Close() error { return nil }

// PutRaw stores an already-encoded blob verbatim. Tests use it to seed
// corrupt payloads.
func (m *Memory) PutRaw(key string, raw []byte) {
	m.blobs[key] = append([]byte(nil), raw...)
}
