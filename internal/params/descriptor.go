// internal/params/descriptor.go
package params

import (
	"errors"
	"fmt"
)

// DescriptorKind tags one allowed-value descriptor.
type DescriptorKind uint8

const (
	DescAbsent DescriptorKind = iota
	DescDiscrete
	DescRange
)

// Descriptor is one entry of a numeric parameter's allowed values:
// the absent marker, a discrete integer, or an inclusive stepped range.
type Descriptor struct {
	Kind      DescriptorKind
	Min       int // discrete value when Kind == DescDiscrete
	Max       int
	Increment int
}

// Absent is the absent-marker descriptor. Only valid as the first entry.
func Absent() Descriptor {
	return Descriptor{Kind: DescAbsent}
}

// Discrete is a single allowed integer.
func Discrete(v int) Descriptor {
	return Descriptor{Kind: DescDiscrete, Min: v, Max: v}
}

// Range is the inclusive range min..max stepped by inc.
func Range(min, max, inc int) Descriptor {
	return Descriptor{Kind: DescRange, Min: min, Max: max, Increment: inc}
}

// contains reports whether v is representable by d.
func (d Descriptor) contains(v int) bool {
	switch d.Kind {
	case DescDiscrete:
		return v == d.Min
	case DescRange:
		return v >= d.Min && v <= d.Max && (v-d.Min)%d.Increment == 0
	}
	return false
}

// covers reports whether v lies within d's span, ignoring the step.
func (d Descriptor) covers(v int) bool {
	return d.Kind != DescAbsent && v >= d.Min && v <= d.Max
}

func (d Descriptor) String() string {
	switch d.Kind {
	case DescAbsent:
		return "Off"
	case DescDiscrete:
		return fmt.Sprintf("%d", d.Min)
	default:
		return fmt.Sprintf("%d..%d/%d", d.Min, d.Max, d.Increment)
	}
}

// validateDescriptors checks the construction invariants of a descriptor list.
func validateDescriptors(ds []Descriptor) error {
	if len(ds) == 0 {
		return errors.New("no descriptors")
	}

	hasRange := false
	concrete := 0
	var prev int
	for i, d := range ds {
		switch d.Kind {
		case DescAbsent:
			if i != 0 {
				return fmt.Errorf("descriptor %d: absent marker must be first", i)
			}
			continue

		case DescDiscrete:
			if d.Max != d.Min {
				return fmt.Errorf("descriptor %d: discrete value has span %d..%d", i, d.Min, d.Max)
			}

		case DescRange:
			hasRange = true
			if d.Min >= d.Max {
				return fmt.Errorf("descriptor %d: range min %d must be below max %d", i, d.Min, d.Max)
			}
			if d.Increment <= 0 {
				return fmt.Errorf("descriptor %d: range increment %d must be > 0", i, d.Increment)
			}
			if (d.Max-d.Min)%d.Increment != 0 {
				return fmt.Errorf("descriptor %d: range %s does not land on max", i, d)
			}

		default:
			return fmt.Errorf("descriptor %d: unknown kind %d", i, d.Kind)
		}

		if concrete > 0 && d.Min <= prev {
			return fmt.Errorf("descriptor %d: %s overlaps or precedes previous value %d", i, d, prev)
		}
		prev = d.Max
		concrete++
	}

	if concrete == 0 {
		return errors.New("no concrete descriptor")
	}
	if !hasRange && len(ds) < 2 {
		return errors.New("a parameter without a range needs at least two descriptors")
	}
	return nil
}
