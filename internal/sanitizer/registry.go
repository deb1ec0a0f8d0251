package sanitizer

import (
	"errors"
	"sort"
	"strings"
)

// ErrArticleNotFound reports that a page carries no article body.
var ErrArticleNotFound = errors.New("article not found")

// Sanitizer converts raw HTML of one source into plain text.
type Sanitizer func(html string) (string, error)

// Registry keeps a mapping from normalized hostnames to sanitizers.
// Populate it before sharing; lookups are read-only afterwards.
type Registry struct {
	sanitizers map[string]Sanitizer
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sanitizers: map[string]Sanitizer{}}
}

// NewDefaultRegistry registers the built-in sources plus extra hosts
// served by the generic sanitizer.
func NewDefaultRegistry(extraHosts ...string) *Registry {
	r := NewRegistry()
	r.Register("inosmi.ru", Inosmi)
	for _, host := range extraHosts {
		if host = normalizeHost(host); host == "" {
			continue
		}
		if _, ok := r.Resolve(host); ok {
			continue
		}
		r.Register(host, Generic)
	}
	return r
}

// Register adds or replaces the sanitizer for host.
func (r *Registry) Register(host string, fn Sanitizer) {
	if r.sanitizers == nil {
		r.sanitizers = map[string]Sanitizer{}
	}
	r.sanitizers[normalizeHost(host)] = fn
}

// normalizeHost matches the form produced for incoming URLs: lower case,
// one leading "www." removed.
func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
}

// Resolve returns the sanitizer for a normalized host. A missing host is
// reported through ok, not as an error.
func (r *Registry) Resolve(host string) (Sanitizer, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.sanitizers[host]
	return fn, ok
}

// Hosts lists registered hosts in lexical order.
func (r *Registry) Hosts() []string {
	if r == nil {
		return nil
	}
	hosts := make([]string, 0, len(r.sanitizers))
	for h := range r.sanitizers {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}
