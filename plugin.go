package classcfg

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Plugin contributes extra candidate classes for a scanned file.
type Plugin interface {
	Name() string
	Extract(path string, content []byte) []string
}

// Registry maps plugin references to implementations.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// DefaultRegistry returns a registry holding the built-in plugins.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(AlpinePlugin{})
	return r
}

// Register adds p under its name, replacing any plugin with the same name.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[p.Name()] = p
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the registered plugin names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves refs in order. An empty list loads nothing.
func (r *Registry) Load(refs []string) ([]Plugin, error) {
	loaded := make([]Plugin, 0, len(refs))
	for _, ref := range refs {
		p, ok := r.Lookup(ref)
		if !ok {
			return nil, fmt.Errorf("loading plugin %q: %w", ref, ErrUnknownPlugin)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

var (
	// Object keys: { 'bg-red-500 font-bold': error, "hidden": !open }
	alpineKeyPattern = regexp.MustCompile(`'([^']*)'\s*:|"([^"]*)"\s*:`)

	// String literals: open ? 'block' : 'hidden', ['p-2', big ? 'text-lg' : '']
	alpineStringPattern = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)
)

// AlpinePlugin harvests classes from Alpine.js :class and x-bind:class bindings.
type AlpinePlugin struct{}

// Name implements Plugin.
func (AlpinePlugin) Name() string { return "alpine" }

// Extract implements Plugin.
func (AlpinePlugin) Extract(_ string, content []byte) []string {
	var classes []string
	_ = eachAttribute(stripTemplateTags(content), func(name string, value []byte) {
		if name != ":class" && name != "x-bind:class" {
			return
		}
		classes = append(classes, alpineClasses(value)...)
	})
	return classes
}

// alpineClasses returns the classes named by a binding expression. An object
// literal contributes its keys only; any other expression contributes every
// string literal it contains.
func alpineClasses(expr []byte) []string {
	expr = bytes.TrimSpace(expr)
	pattern := alpineStringPattern
	if bytes.HasPrefix(expr, []byte("{")) {
		pattern = alpineKeyPattern
	}

	var classes []string
	for _, m := range pattern.FindAllSubmatch(expr, -1) {
		literal := m[1]
		if literal == nil {
			literal = m[2]
		}
		classes = append(classes, splitClassValue(literal)...)
	}
	return classes
}
