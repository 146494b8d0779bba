package config

import (
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Settings is a read-only view of the module settings namespace. Keys are
// dotted paths relative to the namespace.
type Settings struct {
	k *koanf.Koanf
}

// NewSettings builds Settings from a flat or nested map. It is used by tests
// and by callers that do not load YAML.
func NewSettings(values map[string]any) *Settings {
	k := koanf.New(".")
	// confmap never fails for an in-memory map.
	_ = k.Load(confmap.Provider(values, "."), nil)
	return &Settings{k: k}
}

// Get returns the value at key. A missing key is reported as (nil, false),
// which differs from a key configured with an empty value.
func (s *Settings) Get(key string) (any, bool) {
	if !s.k.Exists(key) {
		return nil, false
	}
	return s.k.Get(key), true
}

// Keys returns every leaf key that is set.
func (s *Settings) Keys() []string {
	return s.k.Keys()
}
