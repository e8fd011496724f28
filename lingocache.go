// Package lingocache provides on-demand, cached text translation.
//
// Given a source string and a target language, the Translator returns a
// translated string, calling a host-supplied provider function only when no
// usable cached result exists. Results are persisted as a single blob in an
// opaque key-value medium, so translations survive restarts. When no provider
// is registered, or the provider fails, a deterministic fallback of the form
// "[<lang>] <text>" is returned and cached; the fallback doubles as a
// tombstone, so the entry is retried (and healed) once a real provider
// becomes available.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/lingocache"
//	    "github.com/ZaguanLabs/lingocache/cache"
//	    "github.com/ZaguanLabs/lingocache/provider"
//	)
//
//	func main() {
//	    store := cache.New(cache.NewFileMedium("translations.json"))
//
//	    t := lingocache.New(store,
//	        lingocache.WithLanguage("es"),
//	        lingocache.WithProvider(provider.NewOpenAIFunc(provider.OpenAIConfig{
//	            APIKey: os.Getenv("OPENAI_API_KEY"),
//	        })),
//	    )
//
//	    fmt.Println(t.Translate(context.Background(), "Hello")) // Hola
//	}
package lingocache
