package cache

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestRedisMedium_ReadHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	m := NewRedisMediumFromClient(db, "test:blob")

	mock.ExpectGet("test:blob").SetVal(`{"es":{"1":"Hola"}}`)

	data, ok, err := m.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ok {
		t.Error("expected blob to be present")
	}
	if string(data) != `{"es":{"1":"Hola"}}` {
		t.Errorf("Read = %q", data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisMedium_ReadMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	m := NewRedisMediumFromClient(db, "test:blob")

	mock.ExpectGet("test:blob").RedisNil()

	_, ok, err := m.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ok {
		t.Error("expected empty slot")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisMedium_Write(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	m := NewRedisMediumFromClient(db, "test:blob")

	mock.ExpectSet("test:blob", []byte(`{"es":{"1":"Hola"}}`), 0).SetVal("OK")

	if err := m.Write(context.Background(), []byte(`{"es":{"1":"Hola"}}`)); err != nil {
		t.Errorf("Write failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisMedium_DefaultKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	m := NewRedisMediumFromClient(db, "")

	mock.ExpectGet(DefaultRedisKey).RedisNil()

	if _, ok, _ := m.Read(context.Background()); ok {
		t.Error("expected miss on default key")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestStore_OverRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := testStore(NewRedisMediumFromClient(db, "test:blob"))
	ctx := context.Background()

	// Get loads the whole blob.
	mock.ExpectGet("test:blob").SetVal(`{"es":{"69609650":"Hola"}}`)
	val, ok := s.Get(ctx, "es", "69609650")
	if !ok || val != "Hola" {
		t.Errorf("Get = %q, %v, want Hola, true", val, ok)
	}

	// A read error degrades to a miss, never an error.
	mock.ExpectGet("test:blob").SetErr(context.DeadlineExceeded)
	if _, ok := s.Get(ctx, "es", "69609650"); ok {
		t.Error("redis failure should behave as a miss")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
