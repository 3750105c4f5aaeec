package storage

// Provider is a durable string-keyed, string-valued dictionary. Values are
// JSON-encoded by the stores that own them; each logical group lives under
// its own key and is replaced wholesale on write.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	// Clear removes every key. Used by the factory reset.
	Clear() error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
