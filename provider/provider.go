// Package provider contains translation backends for the lingocache provider
// slot.
package provider

import "github.com/ZaguanLabs/lingocache"

// Func is the provider call boundary.
// This is an alias to the main package type for convenience.
type Func = lingocache.Func

// Result is an alias to the main package type.
type Result = lingocache.Result
