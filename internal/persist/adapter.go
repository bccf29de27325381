// Package persist commits entity collections to a durable key-value
// substrate: one namespaced key per entity kind, value = JSON array of
// that kind's records. Reads happen once at process start; writes happen
// after every mutation and are best-effort.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// ErrNotFound is returned by substrates when a key has no value.
var ErrNotFound = errors.New("persist: key not found")

// Substrate is a durable key-value backend.
type Substrate interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Adapter namespaces kind keys onto a substrate and handles
// serialization. Write failures are logged and swallowed: the in-memory
// store stays authoritative even when durability is lost.
type Adapter struct {
	sub       Substrate
	namespace string
}

func NewAdapter(sub Substrate, namespace string) *Adapter {
	if namespace == "" {
		namespace = "framelight"
	}
	return &Adapter{sub: sub, namespace: namespace}
}

func (a *Adapter) key(kind string) string {
	return a.namespace + ":" + kind
}

// Load reads a kind's collection into out. Returns false when the key is
// absent or the payload does not parse; the caller falls back to seeds.
// Records persisted by older builds may lack newer fields; those default
// to their zero values on decode.
func (a *Adapter) Load(ctx context.Context, kind string, out any) bool {
	payload, err := a.sub.Get(ctx, a.key(kind))
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		log.Printf("persist: read %s: %v", a.key(kind), err)
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Printf("persist: malformed payload for %s, falling back to seed: %v", a.key(kind), err)
		return false
	}
	return true
}

// Save serializes the full collection for a kind and writes it back.
func (a *Adapter) Save(ctx context.Context, kind string, records any) {
	payload, err := json.Marshal(records)
	if err != nil {
		log.Printf("persist: marshal %s: %v", a.key(kind), err)
		return
	}
	if err := a.sub.Set(ctx, a.key(kind), payload); err != nil {
		log.Printf("persist: write %s: %v", a.key(kind), err)
	}
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.sub.Ping(ctx)
}

func (a *Adapter) Close() error {
	return a.sub.Close()
}
