// internal/params/enum_test.go
package params

import (
	"fmt"
	"testing"
)

func TestNewEnum_Rejects(t *testing.T) {
	cases := []EnumSpec{
		{Name: "", Values: []string{"Off", "On"}, Nominal: "Off"},
		{Name: "e", Values: nil, Nominal: ""},
		{Name: "e", Values: []string{"Off", "On", "Off"}, Nominal: "Off"},
		{Name: "e", Values: []string{"Off", "On"}, Nominal: "Maybe"},
	}
	for i, spec := range cases {
		if _, err := NewEnum(spec); err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
	}
}

func TestEnum_GetReturnsIndex(t *testing.T) {
	p, err := NewEnum(EnumSpec{Name: "activity_threshold", Values: activity, Nominal: "Med"})
	if err != nil {
		t.Fatalf("NewEnum() err=%v", err)
	}

	if p.Get() != 3 {
		t.Fatalf("Get()=%d want=3", p.Get())
	}
	if p.String() != "Med" {
		t.Fatalf("String()=%q want=Med", p.String())
	}

	if !p.Set("V-High") {
		t.Fatalf("Set(V-High) failed")
	}
	if p.Get() != 6 {
		t.Fatalf("Get()=%d want=6", p.Get())
	}

	if p.Set("Extreme") {
		t.Fatalf("Set(Extreme) should fail")
	}
	if p.String() != "V-High" {
		t.Fatalf("failed Set changed value to %q", p.String())
	}

	p.Reset()
	if p.String() != "Med" {
		t.Fatalf("Reset() left %q", p.String())
	}
}

func TestEnum_Size(t *testing.T) {
	mk := func(n int) *Enum {
		vals := make([]string, n)
		for i := range vals {
			vals[i] = fmt.Sprintf("v%d", i)
		}
		p, err := NewEnum(EnumSpec{Name: "e", Values: vals, Nominal: "v0"})
		if err != nil {
			t.Fatalf("NewEnum() err=%v", err)
		}
		return p
	}

	if got := mk(1).Size(); got != 1 {
		t.Fatalf("size(1 value)=%d want=1", got)
	}
	if got := mk(256).Size(); got != 1 {
		t.Fatalf("size(256 values)=%d want=1", got)
	}
	if got := mk(257).Size(); got != 2 {
		t.Fatalf("size(257 values)=%d want=2", got)
	}
}
