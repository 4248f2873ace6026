package profile

import (
	"slices"
	"strings"
)

// Registry holds bank profiles by key.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry creates an empty profile registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register adds a profile. Panics on duplicate key.
func (r *Registry) Register(p Profile) {
	key := strings.ToLower(p.Key)
	if _, ok := r.profiles[key]; ok {
		panic("duplicate bank profile: " + key)
	}
	p.Key = key
	r.profiles[key] = p
}

// Get returns the profile for key.
func (r *Registry) Get(key string) (Profile, bool) {
	p, ok := r.profiles[strings.ToLower(key)]
	return p, ok
}

// Keys returns all registered keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.profiles))
	for k := range r.profiles {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DefaultRegistry returns a registry with all built-in profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Ibercaja())
	r.Register(Revolut())
	return r
}
