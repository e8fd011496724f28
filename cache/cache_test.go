package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func testStore(m Medium) *Store {
	return New(m, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// failingMedium simulates a broken storage slot.
type failingMedium struct {
	readErr  error
	writeErr error
	data     []byte
	ok       bool
}

func (f *failingMedium) Read(ctx context.Context) ([]byte, bool, error) {
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	return f.data, f.ok, nil
}

func (f *failingMedium) Write(ctx context.Context, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.data = data
	f.ok = true
	return nil
}

func TestStore_GetSet(t *testing.T) {
	s := testStore(NewMemoryMedium())
	ctx := context.Background()

	if _, ok := s.Get(ctx, "es", "123"); ok {
		t.Error("Get on empty store should miss")
	}

	s.Set(ctx, "es", "123", "Hola")

	val, ok := s.Get(ctx, "es", "123")
	if !ok {
		t.Fatal("Get should hit after Set")
	}
	if val != "Hola" {
		t.Errorf("Get = %q, want %q", val, "Hola")
	}

	// Same fingerprint, different language: independent entry.
	if _, ok := s.Get(ctx, "fr", "123"); ok {
		t.Error("entry must be scoped to its language")
	}
}

func TestStore_Overwrite(t *testing.T) {
	s := testStore(NewMemoryMedium())
	ctx := context.Background()

	s.Set(ctx, "es", "123", "primero")
	s.Set(ctx, "es", "123", "segundo")

	val, _ := s.Get(ctx, "es", "123")
	if val != "segundo" {
		t.Errorf("Get = %q after overwrite, want %q", val, "segundo")
	}
	if s.Len(ctx) != 1 {
		t.Errorf("Len = %d, want 1 (upsert, not append)", s.Len(ctx))
	}
}

func TestStore_CorruptBlobTreatedAsEmpty(t *testing.T) {
	m := NewMemoryMedium()
	ctx := context.Background()
	if err := m.Write(ctx, []byte("{not json")); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	s := testStore(m)
	if _, ok := s.Get(ctx, "es", "123"); ok {
		t.Error("corrupt blob should behave as an empty cache")
	}

	// Writing over the corrupt blob starts fresh.
	s.Set(ctx, "es", "123", "Hola")
	if val, ok := s.Get(ctx, "es", "123"); !ok || val != "Hola" {
		t.Errorf("Get = %q, %v after reset, want Hola, true", val, ok)
	}
}

func TestStore_ReadFailureIsMiss(t *testing.T) {
	s := testStore(&failingMedium{readErr: errors.New("disk on fire")})

	if _, ok := s.Get(context.Background(), "es", "123"); ok {
		t.Error("read failure must behave exactly like a miss")
	}
}

func TestStore_WriteFailureSwallowed(t *testing.T) {
	m := &failingMedium{writeErr: errors.New("read-only filesystem")}
	s := testStore(m)
	ctx := context.Background()

	// Must not panic or surface anything; the update is simply lost.
	s.Set(ctx, "es", "123", "Hola")

	if _, ok := s.Get(ctx, "es", "123"); ok {
		t.Error("lost update should not be readable")
	}
}

func TestStore_BlobLayout(t *testing.T) {
	m := NewMemoryMedium()
	s := testStore(m)
	ctx := context.Background()

	s.Set(ctx, "es", "69609650", "Hola")
	s.Set(ctx, "fr", "69609650", "Bonjour")

	raw, ok, err := m.Read(ctx)
	if err != nil || !ok {
		t.Fatalf("reading blob: ok=%v err=%v", ok, err)
	}

	var blob map[string]map[string]string
	if err := json.Unmarshal(raw, &blob); err != nil {
		t.Fatalf("blob is not a JSON object of shape {lang:{fingerprint:text}}: %v", err)
	}
	if blob["es"]["69609650"] != "Hola" || blob["fr"]["69609650"] != "Bonjour" {
		t.Errorf("unexpected blob contents: %s", raw)
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := testStore(NewMemoryMedium())
	ctx := context.Background()
	s.Set(ctx, "es", "1", "uno")

	snap := s.Snapshot(ctx)
	snap["es"]["1"] = "mutated"

	if val, _ := s.Get(ctx, "es", "1"); val != "uno" {
		t.Errorf("mutating a snapshot must not affect the store, got %q", val)
	}
}

func TestMemoryMedium_EmptyUntilFirstWrite(t *testing.T) {
	m := NewMemoryMedium()
	ctx := context.Background()

	if _, ok, err := m.Read(ctx); ok || err != nil {
		t.Errorf("Read before Write: ok=%v err=%v, want false, nil", ok, err)
	}

	if err := m.Write(ctx, []byte("{}")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, ok, err := m.Read(ctx)
	if err != nil || !ok || string(data) != "{}" {
		t.Errorf("Read = %q, %v, %v, want {}, true, nil", data, ok, err)
	}
}

func TestMemoryMedium_CopiesData(t *testing.T) {
	m := NewMemoryMedium()
	ctx := context.Background()

	buf := []byte(`{"a":1}`)
	if err := m.Write(ctx, buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	buf[2] = 'X'

	data, _, _ := m.Read(ctx)
	if string(data) != `{"a":1}` {
		t.Errorf("stored blob aliased caller buffer: %q", data)
	}
}
