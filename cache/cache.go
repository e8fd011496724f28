// Package cache persists translations as a single blob held by an opaque
// key-value medium.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Medium is the opaque storage slot holding the serialized cache blob.
//
// Implementations must serialize individual Read and Write calls. The store
// performs whole-blob read-modify-write cycles on top of them and holds no
// lock across a cycle, so writers racing between a Read and the matching
// Write can lose updates. Accepted risk, not hardened against.
type Medium interface {
	// Read returns the current blob. ok is false when nothing has been
	// stored yet.
	Read(ctx context.Context) (data []byte, ok bool, err error)

	// Write replaces the blob.
	Write(ctx context.Context, data []byte) error
}

// Error indicates a storage medium failure. The store absorbs it: reads
// degrade to a miss, writes are dropped.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// blob is the persisted shape: language → fingerprint → translated text.
type blob map[string]map[string]string

// Store maps (language, fingerprint) pairs to translated text. The entire
// cache, all languages included, is loaded and re-serialized as one JSON
// unit on every access — O(total cache size) per operation, acceptable for
// the small local media this targets. Entries are only ever added or
// overwritten, never deleted.
type Store struct {
	medium Medium
	logger *slog.Logger
}

// Option is a functional option for configuring the Store.
type Option func(*Store)

// WithLogger sets the logger for absorbed storage failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store backed by the given medium.
func New(medium Medium, opts ...Option) *Store {
	s := &Store{
		medium: medium,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads and decodes the full blob. A read failure or an undecodable
// blob degrades to an empty cache, never an error.
func (s *Store) load(ctx context.Context) blob {
	data, ok, err := s.medium.Read(ctx)
	if err != nil {
		s.logger.Warn("translation cache read failed, treating as empty", "err", err)
		return blob{}
	}
	if !ok || len(data) == 0 {
		return blob{}
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		s.logger.Warn("translation cache corrupted, starting fresh", "err", err)
		return blob{}
	}
	if b == nil {
		b = blob{}
	}
	return b
}

// Get retrieves the cached translation for (language, fingerprint). It never
// fails: a storage read failure behaves exactly like a miss.
func (s *Store) Get(ctx context.Context, lang, fingerprint string) (string, bool) {
	value, ok := s.load(ctx)[lang][fingerprint]
	return value, ok
}

// Set upserts a single entry through a full read-modify-write cycle.
// Failures are logged and swallowed — the update is lost and the caller sees
// nothing. Best-effort persistence by contract.
func (s *Store) Set(ctx context.Context, lang, fingerprint, value string) {
	b := s.load(ctx)

	entries, ok := b[lang]
	if !ok {
		entries = make(map[string]string)
		b[lang] = entries
	}
	entries[fingerprint] = value

	data, err := json.Marshal(b)
	if err != nil {
		s.logger.Warn("translation cache encode failed, update lost", "lang", lang, "err", err)
		return
	}
	if err := s.medium.Write(ctx, data); err != nil {
		s.logger.Warn("translation cache write failed, update lost", "lang", lang, "err", err)
	}
}

// Snapshot returns a copy of all cached entries, keyed by language then
// fingerprint. Used for inspection and cache dumps.
func (s *Store) Snapshot(ctx context.Context) map[string]map[string]string {
	b := s.load(ctx)
	out := make(map[string]map[string]string, len(b))
	for lang, entries := range b {
		m := make(map[string]string, len(entries))
		for fp, value := range entries {
			m[fp] = value
		}
		out[lang] = m
	}
	return out
}

// Len returns the total number of cached entries across all languages.
func (s *Store) Len(ctx context.Context) int {
	n := 0
	for _, entries := range s.load(ctx) {
		n += len(entries)
	}
	return n
}
