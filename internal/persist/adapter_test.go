package persist

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func setupRedisAdapter(t *testing.T) (*Adapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAdapter(NewRedisSubstrateWithClient(client), "test"), mr
}

func TestAdapterRoundtrip(t *testing.T) {
	adapter, _ := setupRedisAdapter(t)
	ctx := context.Background()

	in := []record{{ID: "r1", Name: "one"}, {ID: "r2", Name: "two"}}
	adapter.Save(ctx, "records", in)

	var out []record
	if !adapter.Load(ctx, "records", &out) {
		t.Fatal("Load returned false for a saved kind")
	}
	if len(out) != 2 || out[0].ID != "r1" || out[1].Name != "two" {
		t.Errorf("loaded %+v, want %+v", out, in)
	}
}

func TestAdapterLoadAbsentKey(t *testing.T) {
	adapter, _ := setupRedisAdapter(t)

	var out []record
	if adapter.Load(context.Background(), "missing", &out) {
		t.Error("Load returned true for an absent key")
	}
}

func TestAdapterLoadMalformedPayload(t *testing.T) {
	adapter, mr := setupRedisAdapter(t)

	mr.Set("test:records", "{not valid json")

	var out []record
	if adapter.Load(context.Background(), "records", &out) {
		t.Error("Load returned true for a malformed payload")
	}
}

func TestAdapterNamespacesKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sub := NewRedisSubstrateWithClient(client)
	ctx := context.Background()

	NewAdapter(sub, "alpha").Save(ctx, "records", []record{{ID: "a"}})
	NewAdapter(sub, "beta").Save(ctx, "records", []record{{ID: "b"}})

	var out []record
	if !NewAdapter(sub, "alpha").Load(ctx, "records", &out) {
		t.Fatal("Load failed for namespace alpha")
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("namespace alpha loaded %+v, want [{a}]", out)
	}
}

func TestMemorySubstrate(t *testing.T) {
	sub := NewMemorySubstrate()
	ctx := context.Background()

	if _, err := sub.Get(ctx, "k"); err != ErrNotFound {
		t.Errorf("Get on empty substrate = %v, want ErrNotFound", err)
	}

	if err := sub.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := sub.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}
