package lingocache

import (
	"strconv"
	"unicode/utf16"
)

// Fingerprint maps source text to a compact, stable cache key.
//
// The key is a rolling hash over the text's UTF-16 code units, accumulated as
// acc = (acc << 5) - acc + code on a 32-bit signed accumulator that wraps at
// every step, rendered as a decimal string (possibly negative). The hash is
// deliberately not cryptographic: two distinct texts may collide, which is an
// accepted trade for short, cheap, restart-stable keys.
func Fingerprint(text string) string {
	var acc int32
	for _, code := range utf16.Encode([]rune(text)) {
		acc = (acc << 5) - acc + int32(code)
	}
	return strconv.FormatInt(int64(acc), 10)
}
