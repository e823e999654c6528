// internal/params/parameter.go
package params

// Kind tags the two parameter variants.
type Kind uint8

const (
	KindNumeric Kind = iota + 1
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Parameter is the capability shared by *Numeric and *Enum.
// The set is closed: only this package implements it.
//
// Typed access (Set, IsValid, Increment...) lives on the concrete types;
// use Registry.Numeric / Registry.Enum or a type switch to reach it.
type Parameter interface {
	Name() string
	Kind() Kind

	// Size is the fixed wire width in bytes (>= 1).
	Size() int

	// Wire returns the value serialized on the link: the integer for
	// numeric parameters, the list index for enums.
	// ok is false for an absent numeric value.
	Wire() (v int, ok bool)

	// Display is the human-readable current value.
	Display() string

	// SetString parses text and sets the value if valid.
	// On failure the value is unchanged.
	SetString(text string) bool

	// Reset restores the nominal value.
	Reset()

	sealed()
}

// byteWidth returns the bytes needed to hold magnitude m, minimum 1.
func byteWidth(m uint64) int {
	n := 1
	for m > 0xFF {
		m >>= 8
		n++
	}
	return n
}
