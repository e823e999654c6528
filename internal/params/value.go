// internal/params/value.go
package params

import "strconv"

// Value is a numeric parameter value.
// It is either the absent marker (Off) or an integer.
// The zero Value is Off.
type Value struct {
	n  int
	on bool
}

// Off is the absent marker ("Off" on the programmer screen).
var Off = Value{}

// Int returns a present Value holding n.
func Int(n int) Value {
	return Value{n: n, on: true}
}

// IsOff reports whether v is the absent marker.
func (v Value) IsOff() bool { return !v.on }

// Int returns the integer and true, or (0, false) for Off.
func (v Value) Int() (int, bool) {
	return v.n, v.on
}

func (v Value) String() string {
	if !v.on {
		return "Off"
	}
	return strconv.Itoa(v.n)
}

// ParseValue parses "Off" or a decimal integer.
func ParseValue(s string) (Value, bool) {
	if s == "Off" {
		return Off, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Off, false
	}
	return Int(n), true
}
