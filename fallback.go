package lingocache

import "strings"

// FallbackText builds the deterministic synthetic translation used when no
// provider is registered or the provider fails. The exact shape is
// load-bearing: the coordinator recognizes it in cached entries and treats it
// as a tombstone meaning "retry on next access".
func FallbackText(targetLang, text string) string {
	return "[" + targetLang + "] " + text
}

// IsFallback reports whether a cached value is a fallback marker for the
// given language. Detection is by prefix match only, so a genuine translation
// that happens to start with "[<lang>] " is treated as stale and will be
// re-requested on its next read. Known limitation.
func IsFallback(value, targetLang string) bool {
	return strings.HasPrefix(value, "["+targetLang+"] ")
}
