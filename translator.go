package lingocache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ZaguanLabs/lingocache/cache"
)

// Translator is the translation coordinator: it resolves strings against the
// cache store, discards stale fallback entries, and calls the provider slot
// on a miss, writing the fresh result back.
type Translator struct {
	mu         sync.RWMutex
	language   string
	sourceLang string
	store      *cache.Store
	slot       *Slot
	provider   Func // only used during construction
	logger     *slog.Logger
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithLanguage sets the initial target language.
func WithLanguage(lang string) Option {
	return func(t *Translator) {
		t.language = lang
	}
}

// WithSourceLang sets the source language (default "en").
func WithSourceLang(lang string) Option {
	return func(t *Translator) {
		t.sourceLang = lang
	}
}

// WithProvider registers the initial provider function.
func WithProvider(fn Func) Option {
	return func(t *Translator) {
		t.provider = fn
	}
}

// WithLogger sets the logger used for absorbed provider and storage
// failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// New creates a Translator backed by the given cache store.
func New(store *cache.Store, opts ...Option) *Translator {
	t := &Translator{
		language:   "en",
		sourceLang: "en",
		store:      store,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.slot = NewSlot(t.logger)
	if t.provider != nil {
		t.slot.Set(t.provider)
		t.provider = nil
	}

	return t
}

// SetProvider registers fn as the sole active provider, silently replacing
// any previous registration. Calls already in flight complete against the
// provider they captured.
func (t *Translator) SetProvider(fn Func) {
	t.slot.Set(fn)
}

// Provider returns the provider slot, mainly for inspection in tests.
func (t *Translator) Provider() *Slot {
	return t.slot
}

// Language returns the current target language.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// SetLanguage switches the target language for subsequent Translate calls.
func (t *Translator) SetLanguage(lang string) {
	t.mu.Lock()
	t.language = lang
	t.mu.Unlock()
}

// SourceLang returns the source language.
func (t *Translator) SourceLang() string {
	return t.sourceLang
}

// IsSourceLang reports whether the current target language is the source
// language (base codes compared, so "en_GB" matches source "en").
func (t *Translator) IsSourceLang() bool {
	return baseLang(t.Language()) == baseLang(t.sourceLang)
}

// Translate resolves text in the current target language. It always returns
// some string — the input itself for the source language, a trusted cache
// entry, a fresh provider translation, or the deterministic fallback marker —
// and never fails: provider and storage errors are absorbed and logged.
//
// A cached fallback marker is treated as a tombstone: the provider is
// re-invoked and its result overwrites the marker, so entries faked while no
// provider was available heal themselves on their next read.
//
// There is no in-flight de-duplication: concurrent calls for the same text
// before the first completes may each miss the cache and each invoke the
// provider. Provider calls are idempotent and the last write wins.
func (t *Translator) Translate(ctx context.Context, text string) string {
	lang := t.Language()
	if baseLang(lang) == baseLang(t.sourceLang) {
		return text
	}

	fp := Fingerprint(text)

	if cached, ok := t.store.Get(ctx, lang, fp); ok && !IsFallback(cached, lang) {
		return cached
	}

	res := t.slot.Translate(ctx, text, lang)
	t.store.Set(ctx, lang, fp, res.TranslatedText)
	return res.TranslatedText
}

// Hook returns the host-facing accessor a UI binding layer consumes.
// Language is a snapshot taken now; take a fresh Hook after SetLanguage.
func (t *Translator) Hook() Hook {
	return Hook{
		T:           t.Translate,
		Language:    t.Language(),
		SetLanguage: t.SetLanguage,
	}
}
