package lingocache

import (
	"context"
	"log/slog"
	"sync"
)

// Func is the provider call boundary: the host-supplied function that
// performs an actual translation. It receives exactly the source text and the
// target language and must return a plain translated string. Richer metadata
// (detected source language, confidence) is not accepted in this version.
type Func func(ctx context.Context, text, targetLang string) (string, error)

// DetectedSourceDefault is the placeholder reported as the detected source
// language. The core never performs detection; a provider that knows better
// has no channel to report it yet.
const DetectedSourceDefault = "auto"

// Slot holds at most one provider Func. Setting a new one silently discards
// the previous registration; there is no chaining and no hand-off guarantee,
// so calls already in flight complete against the closure they captured.
type Slot struct {
	mu     sync.RWMutex
	fn     Func
	logger *slog.Logger
}

// NewSlot creates an empty provider slot. A nil logger defaults to
// slog.Default().
func NewSlot(logger *slog.Logger) *Slot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slot{logger: logger}
}

// Set registers fn as the sole active provider, replacing any previous one.
// A nil fn clears the slot.
func (s *Slot) Set(fn Func) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// Registered reports whether a provider is currently set.
func (s *Slot) Registered() bool {
	return s.current() != nil
}

func (s *Slot) current() Func {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fn
}

// Translate resolves text for targetLang through the registered provider.
// It never fails: with no provider registered, or when the provider returns
// an error, the result is the deterministic fallback marker (see
// FallbackText) with the placeholder source language. Provider errors are
// logged, not propagated.
func (s *Slot) Translate(ctx context.Context, text, targetLang string) Result {
	fn := s.current()
	if fn == nil {
		return Result{
			TranslatedText:         FallbackText(targetLang, text),
			DetectedSourceLanguage: DetectedSourceDefault,
		}
	}

	translated, err := fn(ctx, text, targetLang)
	if err != nil {
		s.logger.Warn("translation provider failed, using fallback",
			"lang", targetLang, "err", err)
		return Result{
			TranslatedText:         FallbackText(targetLang, text),
			DetectedSourceLanguage: DetectedSourceDefault,
		}
	}

	return Result{
		TranslatedText:         translated,
		DetectedSourceLanguage: DetectedSourceDefault,
	}
}
