package provider

import (
	"context"
	"sync"

	"github.com/ZaguanLabs/lingocache"
)

// Mock is a scripted provider for testing. Register it with
// translator.SetProvider(m.Translate).
type Mock struct {
	mu           sync.Mutex
	Translations map[string]string // Map of source text to translation
	Err          error             // When set, every call fails with this error
	callCount    int
	lastText     string
	lastLang     string
}

// NewMock creates a mock provider with default translations.
func NewMock() *Mock {
	return &Mock{
		Translations: map[string]string{
			"Hello":                "Hola",
			"World":                "Mundo",
			"Hello World":          "Hola Mundo",
			"Welcome to our site.": "Bienvenido a nuestro sitio.",
		},
	}
}

// Translate returns the scripted translation, or the text itself when no
// script entry exists.
func (m *Mock) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastText = text
	m.lastLang = targetLang
	err := m.Err
	translation, ok := m.Translations[text]
	m.mu.Unlock()

	if err != nil {
		return "", err
	}
	if !ok {
		return text, nil
	}
	return translation, nil
}

// CallCount returns how many times Translate was invoked.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the text and language of the most recent call.
func (m *Mock) LastRequest() (text, targetLang string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText, m.lastLang
}

// Reset clears the call count and recorded request.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastText = ""
	m.lastLang = ""
}

// Verify the method satisfies the slot signature
var _ lingocache.Func = (*Mock)(nil).Translate
