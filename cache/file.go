package cache

import (
	"context"
	"os"
	"sync"
)

// FileMedium stores the blob in a single local file — the closest analog to
// browser local storage. Calls are mutex-serialized within the process;
// coordination across processes is the host's problem.
type FileMedium struct {
	mu   sync.Mutex
	path string
}

// NewFileMedium creates a medium backed by the file at path. The file is
// created on first Write.
func NewFileMedium(path string) *FileMedium {
	return &FileMedium{path: path}
}

// Path returns the backing file path.
func (m *FileMedium) Path() string {
	return m.path
}

// Read returns the file contents, ok is false when the file does not exist.
func (m *FileMedium) Read(ctx context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path) // #nosec G304 - path is intentionally user-provided
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Message: "reading cache file", Cause: err}
	}
	return data, true, nil
}

// Write replaces the file contents.
func (m *FileMedium) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return &Error{Message: "writing cache file", Cause: err}
	}
	return nil
}

// Verify FileMedium implements Medium
var _ Medium = (*FileMedium)(nil)
