package storage

import (
	"encoding/json"
	"fmt"

	"zikirmatik/internal/logger"
)

// Backend couples a Provider with a write-behind queue and handles the
// JSON framing. Reads go straight to the provider (hydration happens once
// at startup); writes are enqueued and not awaited.
type Backend struct {
	provider Provider
	writer   *WriteBehind
}

func NewBackend(provider Provider) *Backend {
	return &Backend{
		provider: provider,
		writer:   NewWriteBehind(provider),
	}
}

// GetJSON reads and decodes the value under key. Returns false when the
// key is absent.
func (b *Backend) GetJSON(key string, out interface{}) (bool, error) {
	raw, ok, err := b.provider.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// PutJSON encodes value and enqueues the write. Encoding failures are
// logged, not returned; callers treat persistence as best effort.
func (b *Backend) PutJSON(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode value for persistence", "key", key, "error", err)
		return
	}
	b.writer.Put(key, string(data))
}

// PutString enqueues a raw string write, used by the widget snapshot keys.
func (b *Backend) PutString(key, value string) {
	b.writer.Put(key, value)
}

// GetString reads a raw string value.
func (b *Backend) GetString(key string) (string, bool, error) {
	return b.provider.Get(key)
}

// Remove enqueues a delete for key.
func (b *Backend) Remove(key string) {
	b.writer.Remove(key)
}

// Clear drains pending writes then removes every key. Used only by the
// factory reset, which is deliberately blunt.
func (b *Backend) Clear() error {
	b.writer.Flush()
	return b.provider.Clear()
}

// Flush blocks until every enqueued write has been applied.
func (b *Backend) Flush() {
	b.writer.Flush()
}

// Close drains the queue and stops the writer. The provider itself is
// closed by the caller that opened it.
func (b *Backend) Close() {
	b.writer.Close()
}

// ConfigPath exposes the underlying provider's path for backups and doctor.
func (b *Backend) ConfigPath() string {
	return b.provider.GetConfigPath()
}
