package lingocache

import (
	"strconv"
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "0",
		},
		{
			name:     "single character",
			input:    "a",
			expected: "97",
		},
		{
			name:     "short ascii",
			input:    "abc",
			expected: "96354",
		},
		{
			name:     "greeting",
			input:    "Hello",
			expected: "69609650",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fingerprint(tt.input)
			if result != tt.expected {
				t.Errorf("Fingerprint(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	inputs := []string{
		"Hello World",
		"  whitespace matters  ",
		"こんにちは世界",
		"emoji 🎉 input",
		strings.Repeat("a long sentence that overflows the accumulator ", 50),
	}

	for _, input := range inputs {
		first := Fingerprint(input)
		for i := 0; i < 10; i++ {
			if got := Fingerprint(input); got != first {
				t.Fatalf("Fingerprint(%q) unstable: %q then %q", input, first, got)
			}
		}
	}
}

func TestFingerprint_WrapsToInt32(t *testing.T) {
	// Long inputs must overflow and wrap, never grow beyond 32-bit signed
	// range.
	inputs := []string{
		"Hello World",
		strings.Repeat("lingocache ", 200),
		strings.Repeat("翻訳", 500),
	}

	for _, input := range inputs {
		fp := Fingerprint(input)
		if _, err := strconv.ParseInt(fp, 10, 32); err != nil {
			t.Errorf("Fingerprint(%.20q...) = %q, not a 32-bit signed decimal: %v", input, fp, err)
		}
	}
}

func TestFingerprint_DistinctInputs(t *testing.T) {
	// Not a collision-freedom guarantee, just a sanity check that nearby
	// inputs produce different keys.
	a := Fingerprint("Hello")
	b := Fingerprint("Hello ")
	c := Fingerprint("hello")

	if a == b || a == c || b == c {
		t.Errorf("expected distinct fingerprints, got %q %q %q", a, b, c)
	}
}
