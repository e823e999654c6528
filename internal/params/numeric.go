// internal/params/numeric.go
package params

import (
	"errors"
	"fmt"
)

// Numeric is a parameter whose allowed values are described by an ordered
// list of descriptors (optional absent marker, discrete integers, ranges).
type Numeric struct {
	name    string
	unit    string
	descs   []Descriptor
	nominal Value
	value   Value
}

// NumericSpec is the construction input for a numeric parameter.
type NumericSpec struct {
	Name        string
	Unit        string
	Descriptors []Descriptor
	Nominal     Value
}

// NewNumeric validates spec and returns a parameter set to its nominal value.
// A malformed table is a programming defect; callers at startup treat the
// error as fatal.
func NewNumeric(spec NumericSpec) (*Numeric, error) {
	if spec.Name == "" {
		return nil, errors.New("params: numeric parameter name required")
	}
	if err := validateDescriptors(spec.Descriptors); err != nil {
		return nil, fmt.Errorf("params: %s: %w", spec.Name, err)
	}

	p := &Numeric{
		name:  spec.Name,
		unit:  spec.Unit,
		descs: append([]Descriptor(nil), spec.Descriptors...),
	}
	if !p.IsValid(spec.Nominal) {
		return nil, fmt.Errorf("params: %s: nominal %s is not a programmable value", spec.Name, spec.Nominal)
	}

	p.nominal = spec.Nominal
	p.value = spec.Nominal
	return p, nil
}

func (p *Numeric) sealed() {}

func (p *Numeric) Name() string   { return p.name }
func (p *Numeric) Kind() Kind     { return KindNumeric }
func (p *Numeric) Unit() string   { return p.unit }
func (p *Numeric) Nominal() Value { return p.nominal }

// Descriptors returns a copy of the allowed-value table.
func (p *Numeric) Descriptors() []Descriptor {
	return append([]Descriptor(nil), p.descs...)
}

// Get returns the current value. This is the serialization source.
func (p *Numeric) Get() Value { return p.value }

// IsValid reports whether v is a programmable value.
func (p *Numeric) IsValid(v Value) bool {
	n, ok := v.Int()
	if !ok {
		return p.descs[0].Kind == DescAbsent
	}
	for _, d := range p.descs {
		if d.contains(n) {
			return true
		}
	}
	return false
}

// Set assigns v if it is valid. On failure the value is unchanged.
func (p *Numeric) Set(v Value) bool {
	if !p.IsValid(v) {
		return false
	}
	p.value = v
	return true
}

func (p *Numeric) SetString(text string) bool {
	v, ok := ParseValue(text)
	if !ok {
		return false
	}
	return p.Set(v)
}

func (p *Numeric) Reset() { p.value = p.nominal }

func (p *Numeric) Display() string {
	if p.value.IsOff() || p.unit == "" {
		return p.value.String()
	}
	return p.value.String() + " " + p.unit
}

// Wire returns the integer value; ok is false when the value is Off.
func (p *Numeric) Wire() (int, bool) {
	return p.value.Int()
}

// Size is the smallest byte count that holds the largest magnitude of any
// programmable value. Negative values are sent two's-complement in that width.
func (p *Numeric) Size() int {
	var m uint64
	for _, d := range p.descs {
		if d.Kind == DescAbsent {
			continue
		}
		for _, v := range [2]int{d.Min, d.Max} {
			a := v
			if a < 0 {
				a = -a
			}
			if uint64(a) > m {
				m = uint64(a)
			}
		}
	}
	return byteWidth(m)
}

// Min is the smallest concrete programmable value.
func (p *Numeric) Min() int {
	return p.descs[p.firstConcrete()].Min
}

// Max is the largest programmable value.
func (p *Numeric) Max() int {
	return p.descs[len(p.descs)-1].Max
}

func (p *Numeric) firstConcrete() int {
	if p.descs[0].Kind == DescAbsent {
		return 1
	}
	return 0
}

// Increment moves to the next programmable value.
// From Off it jumps to the minimum. At the maximum it does nothing.
func (p *Numeric) Increment() {
	n, ok := p.value.Int()
	if !ok {
		p.value = Int(p.Min())
		return
	}

	for i := p.firstConcrete(); i < len(p.descs); i++ {
		d := p.descs[i]
		if !d.covers(n) {
			continue
		}
		if d.Kind == DescRange && n+d.Increment <= d.Max {
			p.value = Int(n + d.Increment)
			return
		}
		if i+1 < len(p.descs) {
			p.value = Int(p.descs[i+1].Min)
		}
		return
	}
}

// Decrement moves to the previous programmable value.
// From Off it jumps to the minimum; there is nothing below Off.
// At the minimum it does nothing.
func (p *Numeric) Decrement() {
	n, ok := p.value.Int()
	if !ok {
		p.value = Int(p.Min())
		return
	}

	first := p.firstConcrete()
	for i := len(p.descs) - 1; i >= first; i-- {
		d := p.descs[i]
		if !d.covers(n) {
			continue
		}
		if d.Kind == DescRange && n-d.Increment >= d.Min {
			p.value = Int(n - d.Increment)
			return
		}
		if i-1 >= first {
			p.value = Int(p.descs[i-1].Max)
		}
		return
	}
}
