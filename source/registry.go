package source

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Registry holds registered sources.
type Registry struct {
	sources map[string]Source
}

// DefaultRegistry is the global source registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new source registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Source),
	}
}

// Register adds a source to the registry.
func (r *Registry) Register(s Source) {
	r.sources[s.Name()] = s
}

// Get retrieves a source by name.
func (r *Registry) Get(name string) (Source, bool) {
	s, ok := r.sources[strings.ToLower(name)]
	return s, ok
}

// GetParser retrieves a parser by name.
func (r *Registry) GetParser(name string) (Parser, error) {
	s, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", name)
	}
	p, ok := s.(Parser)
	if !ok {
		return nil, fmt.Errorf("source %s does not support parsing", name)
	}
	return p, nil
}

// List returns all registered source names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectFromContent attempts to detect the source from content alone.
func (r *Registry) DetectFromContent(peek []byte) (Source, error) {
	peek = bytes.TrimSpace(peek)

	for _, name := range r.List() {
		s := r.sources[name]
		if s.CanParse(peek) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("could not detect source from content")
}

// Register adds a source to the default registry.
func Register(s Source) {
	DefaultRegistry.Register(s)
}

// Get retrieves a source from the default registry.
func Get(name string) (Source, bool) {
	return DefaultRegistry.Get(name)
}

// GetParser retrieves a parser from the default registry.
func GetParser(name string) (Parser, error) {
	return DefaultRegistry.GetParser(name)
}

// DetectFromContent detects the source using the default registry.
func DetectFromContent(peek []byte) (Source, error) {
	return DefaultRegistry.DetectFromContent(peek)
}
