package lingocache

import "fmt"

// ProviderError indicates a translation provider failure (API error, rate
// limit, network, etc.). The coordinator never surfaces it to callers; it is
// logged and downgraded to fallback text. Provider implementations should
// return it so the retry wrapper can classify failures.
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
