// internal/params/enum.go
package params

import (
	"errors"
	"fmt"
)

// Enum is a parameter whose value is one of an ordered list of strings.
// On the wire it is sent as the index into that list.
type Enum struct {
	name    string
	values  []string
	index   map[string]int
	nominal string
	value   string
}

// EnumSpec is the construction input for an enumerated parameter.
type EnumSpec struct {
	Name    string
	Values  []string
	Nominal string
}

// NewEnum validates spec and returns a parameter set to its nominal value.
func NewEnum(spec EnumSpec) (*Enum, error) {
	if spec.Name == "" {
		return nil, errors.New("params: enum parameter name required")
	}
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("params: %s: no programmable values", spec.Name)
	}

	idx := make(map[string]int, len(spec.Values))
	for i, v := range spec.Values {
		if _, dup := idx[v]; dup {
			return nil, fmt.Errorf("params: %s: duplicate value %q", spec.Name, v)
		}
		idx[v] = i
	}
	if _, ok := idx[spec.Nominal]; !ok {
		return nil, fmt.Errorf("params: %s: nominal %q is not a programmable value", spec.Name, spec.Nominal)
	}

	return &Enum{
		name:    spec.Name,
		values:  append([]string(nil), spec.Values...),
		index:   idx,
		nominal: spec.Nominal,
		value:   spec.Nominal,
	}, nil
}

func (p *Enum) sealed() {}

func (p *Enum) Name() string    { return p.name }
func (p *Enum) Kind() Kind      { return KindEnum }
func (p *Enum) Nominal() string { return p.nominal }

// Values returns a copy of the programmable strings in wire order.
func (p *Enum) Values() []string {
	return append([]string(nil), p.values...)
}

// IsValid is a membership test.
func (p *Enum) IsValid(s string) bool {
	_, ok := p.index[s]
	return ok
}

// Set assigns s if it is a member. On failure the value is unchanged.
func (p *Enum) Set(s string) bool {
	if !p.IsValid(s) {
		return false
	}
	p.value = s
	return true
}

func (p *Enum) SetString(text string) bool { return p.Set(text) }

// Get returns the index of the current value (the wire form).
func (p *Enum) Get() int { return p.index[p.value] }

// String returns the current value.
func (p *Enum) String() string { return p.value }

func (p *Enum) Display() string { return p.value }

func (p *Enum) Reset() { p.value = p.nominal }

func (p *Enum) Wire() (int, bool) { return p.Get(), true }

// Size is the byte count needed for the largest index.
func (p *Enum) Size() int {
	return byteWidth(uint64(len(p.values) - 1))
}
