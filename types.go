package lingocache

import "context"

// Result is the outcome of a provider-indirection call. The provider itself
// only ever returns a plain translated string; DetectedSourceLanguage is
// filled with DetectedSourceDefault because this version performs no
// detection.
type Result struct {
	TranslatedText         string
	DetectedSourceLanguage string
}

// Hook is the host-facing accessor a UI layer binds against, mirroring a
// use-translation hook: T resolves a string in the language captured when the
// hook was taken, SetLanguage switches the translator for subsequent hooks.
type Hook struct {
	T           func(ctx context.Context, text string) string
	Language    string
	SetLanguage func(lang string)
}

// IgnoredTags contains HTML tags whose content should not be translated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// RTLLanguages contains base language codes written right-to-left.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}
