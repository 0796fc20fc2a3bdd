package sources

import (
	"fmt"
	"net/url"
	"strings"
)

// Registry resolves publisher profiles by key or hostname.
type Registry struct {
	profiles []*Profile
	byHost   map[string]*Profile
	byKey    map[string]*Profile
}

// NewRegistry compiles the given profiles and indexes them.
func NewRegistry(profiles []*Profile) (*Registry, error) {
	r := &Registry{
		profiles: profiles,
		byHost:   make(map[string]*Profile),
		byKey:    make(map[string]*Profile),
	}

	for _, p := range profiles {
		if err := p.Compile(); err != nil {
			return nil, err
		}
		if _, dup := r.byKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate profile key: %s", p.Key)
		}
		r.byKey[p.Key] = p
		for _, h := range p.Hosts {
			r.byHost[strings.ToLower(h)] = p
		}
	}

	return r, nil
}

// NewDefaultRegistry builds a registry from the built-in profiles.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultProfiles())
}

// All returns every registered profile.
func (r *Registry) All() []*Profile {
	return r.profiles
}

// ByKey returns the profile with the given key, or nil.
func (r *Registry) ByKey(key string) *Profile {
	return r.byKey[key]
}

// ByHost returns the profile owning the given hostname, or nil.
func (r *Registry) ByHost(host string) *Profile {
	return r.byHost[strings.ToLower(host)]
}

// ByURL resolves the profile for a raw URL, or nil when the host is not
// a configured publisher.
func (r *Registry) ByURL(rawURL string) *Profile {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return r.ByHost(u.Hostname())
}

// SourceName returns the publisher name for a hostname, falling back to
// the hostname itself for unknown publishers.
func (r *Registry) SourceName(host string) string {
	if p := r.ByHost(host); p != nil {
		return p.Name
	}
	return host
}
