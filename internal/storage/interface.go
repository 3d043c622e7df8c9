package storage

import "errors"

// ErrNotLoaded is returned by every data operation issued before Load or Init
var ErrNotLoaded = errors.New("storage not loaded")

// Provider is a durable key-value store holding one JSON document per key
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value for key; ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
