// internal/params/registry.go
package params

import (
	"fmt"
	"sort"
	"strings"
)

// ModeName is the registry key of the pacing-mode parameter.
const ModeName = "mode"

// Registry owns the named parameters of one device session.
// Structure is fixed after construction; only parameter values mutate.
// A Registry is not safe for concurrent mutation; the caller owns it.
type Registry struct {
	byName map[string]Parameter
	order  []string
}

// NewRegistry builds a registry from params in the given order.
func NewRegistry(params ...Parameter) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Parameter, len(params)),
		order:  make([]string, 0, len(params)),
	}
	for _, p := range params {
		if p == nil {
			return nil, fmt.Errorf("params: nil parameter at position %d", len(r.order))
		}
		if _, dup := r.byName[p.Name()]; dup {
			return nil, fmt.Errorf("params: duplicate parameter %q", p.Name())
		}
		r.byName[p.Name()] = p
		r.order = append(r.order, p.Name())
	}
	return r, nil
}

// Get returns the named parameter.
func (r *Registry) Get(name string) (Parameter, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Numeric returns the named parameter if it is numeric.
func (r *Registry) Numeric(name string) (*Numeric, bool) {
	p, ok := r.byName[name].(*Numeric)
	return p, ok
}

// Enum returns the named parameter if it is enumerated.
func (r *Registry) Enum(name string) (*Enum, bool) {
	p, ok := r.byName[name].(*Enum)
	return p, ok
}

// Names returns parameter names in table order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Mode returns the current pacing mode, or "" if the registry has no mode.
func (r *Registry) Mode() string {
	m, ok := r.Enum(ModeName)
	if !ok {
		return ""
	}
	return m.String()
}

// SetMode sets the pacing mode if it is a programmable value.
func (r *Registry) SetMode(mode string) bool {
	m, ok := r.Enum(ModeName)
	if !ok {
		return false
	}
	return m.Set(mode)
}

// Reset restores every parameter to nominal.
func (r *Registry) Reset() {
	for _, name := range r.order {
		r.byName[name].Reset()
	}
}

// Apply sets parameters from text values (config overrides).
// It is all-or-nothing: on any unknown name or invalid value no parameter
// is changed.
func (r *Registry) Apply(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var bad []string
	for _, name := range names {
		p, ok := r.byName[name]
		if !ok {
			bad = append(bad, fmt.Sprintf("unknown parameter %q", name))
			continue
		}
		if !acceptsText(p, values[name]) {
			bad = append(bad, fmt.Sprintf("%s: invalid value %q", name, values[name]))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("params: %s", strings.Join(bad, " | "))
	}

	for _, name := range names {
		r.byName[name].SetString(values[name])
	}
	return nil
}

func acceptsText(p Parameter, text string) bool {
	switch v := p.(type) {
	case *Numeric:
		val, ok := ParseValue(text)
		return ok && v.IsValid(val)
	case *Enum:
		return v.IsValid(text)
	}
	return false
}
