// internal/params/registry_test.go
package params

import "testing"

func mustDefault(t *testing.T) *Registry {
	t.Helper()
	r, err := Default()
	if err != nil {
		t.Fatalf("Default() err=%v", err)
	}
	return r
}

func TestDefault_BuildsAtNominal(t *testing.T) {
	r := mustDefault(t)

	if r.Mode() != "DDD" {
		t.Fatalf("mode=%q want=DDD", r.Mode())
	}

	lrl, ok := r.Numeric("lower_rate_limit")
	if !ok {
		t.Fatalf("lower_rate_limit missing or not numeric")
	}
	if lrl.Get() != Int(60) || lrl.Size() != 1 {
		t.Fatalf("lower_rate_limit=%s size=%d", lrl.Get(), lrl.Size())
	}

	hrl, _ := r.Numeric("hysteresis_rate_limit")
	if !hrl.Get().IsOff() {
		t.Fatalf("hysteresis_rate_limit nominal should be Off, got %s", hrl.Get())
	}

	if _, ok := r.Enum("atr_mode"); !ok {
		t.Fatalf("atr_mode missing or not enum")
	}
	if _, ok := r.Numeric("atr_mode"); ok {
		t.Fatalf("atr_mode must not resolve as numeric")
	}
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	a, _ := NewEnum(EnumSpec{Name: "x", Values: offOn, Nominal: "Off"})
	b, _ := NewEnum(EnumSpec{Name: "x", Values: offOn, Nominal: "On"})

	if _, err := NewRegistry(a, b); err == nil {
		t.Fatalf("expected duplicate error, got nil")
	}
}

func TestRegistry_SetMode(t *testing.T) {
	r := mustDefault(t)

	if !r.SetMode("VVI") || r.Mode() != "VVI" {
		t.Fatalf("SetMode(VVI) failed, mode=%q", r.Mode())
	}
	if r.SetMode("XYZ") {
		t.Fatalf("SetMode(XYZ) should fail")
	}
	if r.Mode() != "VVI" {
		t.Fatalf("failed SetMode changed mode to %q", r.Mode())
	}
}

func TestRegistry_ApplyAllOrNothing(t *testing.T) {
	r := mustDefault(t)

	err := r.Apply(map[string]string{
		"mode":             "AAI",
		"lower_rate_limit": "61",
		"pvarp":            "155", // off-step
	})
	if err == nil {
		t.Fatalf("expected error for off-step pvarp, got nil")
	}
	if r.Mode() != "DDD" {
		t.Fatalf("rejected Apply changed mode to %q", r.Mode())
	}
	lrl, _ := r.Numeric("lower_rate_limit")
	if lrl.Get() != Int(60) {
		t.Fatalf("rejected Apply changed lower_rate_limit to %s", lrl.Get())
	}

	if err := r.Apply(map[string]string{"no_such_param": "1"}); err == nil {
		t.Fatalf("expected unknown-name error, got nil")
	}

	err = r.Apply(map[string]string{
		"mode":                  "AAI",
		"lower_rate_limit":      "61",
		"hysteresis_rate_limit": "Off",
		"activity_threshold":    "High",
	})
	if err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	if r.Mode() != "AAI" || lrl.Get() != Int(61) {
		t.Fatalf("Apply not applied: mode=%q lrl=%s", r.Mode(), lrl.Get())
	}

	r.Reset()
	if r.Mode() != "DDD" || lrl.Get() != Int(60) {
		t.Fatalf("Reset() left mode=%q lrl=%s", r.Mode(), lrl.Get())
	}
}
